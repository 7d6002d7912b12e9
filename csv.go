package jsontable

// CSVParams returns the CSV preset: comma-separated, cells holding a comma,
// quote, or line break wrapped in double quotes, and embedded quotes doubled.
func CSVParams() Params {
	return Params{
		Delimiter:    ",",
		Left:         `"`,
		Right:        `"`,
		Escape:       ",\"\n\r",
		Replacements: []Replacement{{Old: `"`, New: `""`}},
	}
}

// ToCSV renders records as CSV.
func ToCSV(records []Value) string {
	return Render(records, CSVParams())
}
