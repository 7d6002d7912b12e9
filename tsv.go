package jsontable

// TSVParams returns the TSV preset. It quotes like [CSVParams] but splits
// cells on tabs.
func TSVParams() Params {
	return Params{
		Delimiter:    "\t",
		Left:         `"`,
		Right:        `"`,
		Escape:       "\t\"\n\r",
		Replacements: []Replacement{{Old: `"`, New: `""`}},
	}
}

// ToTSV renders records as tab-separated values.
func ToTSV(records []Value) string {
	return Render(records, TSVParams())
}
