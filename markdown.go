package jsontable

// MarkdownParams returns the Markdown preset: pipe-separated cells padded to
// their column width, with a dashed line under the header rows.
func MarkdownParams() Params {
	return Params{
		Delimiter:       "|",
		HeaderSeparator: '-',
		Pad:             true,
	}
}

// ToMarkdown renders records as a Markdown table.
func ToMarkdown(records []Value) string {
	return Render(records, MarkdownParams())
}
