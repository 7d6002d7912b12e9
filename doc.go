// Package jsontable flattens nested JSON into spreadsheet-friendly tables.
//
// Irregular documents (nested objects, arrays of scalars, arrays of objects,
// fields present in some records but not others) become a single rectangular
// table. Nested object fields turn into multi-row column headers and arrays
// unroll into repeated rows, so the structure of the input stays visible in
// the output.
//
// # Records
//
// A top-level array holds the records; any other document is one record.
// Each record occupies a block of rows: plain fields sit on the block's first
// row and array elements stack downward from it.
//
//	[{"field":"value1","array":["item1","item2"]}]
//
// renders as CSV:
//
//	field,array
//	value1,item1
//	,item2
//
// # Nested objects
//
// Object fields are grouped under their parent's column:
//
//	[{"user":{"name":"John","age":30},"settings":{"theme":"dark"}}]
//
// renders as:
//
//	user,,settings
//	name,age,theme
//	John,30,dark
//
// # Formats
//
// [ToCSV], [ToMarkdown], and [ToTSV] use fixed presets. [Render] takes a
// [Params] value for any other delimited layout, and [Write] or [Marshal]
// pick the preset from a [Format]:
//
//	f, err := jsontable.ParseFormat(flagValue)
//	jsontable.Write(os.Stdout, f, jsontable.Records(doc)...)
//
// # Input
//
// The engine consumes an already-parsed [Value] tree. [Decode] reads JSON and
// [DecodeYAML] reads YAML, both keeping object keys in document order;
// [FromAny] adapts values decoded by other means. [Convert] decodes and
// renders in one call.
//
// # Errors
//
// Conversion of a parsed tree cannot fail. The package exports sentinel
// errors for the surrounding steps:
//
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrInvalidJSON]: unparseable JSON text
//   - [ErrInvalidYAML]: unparseable YAML text
//   - [ErrEmptyInput]: no document in the input
package jsontable
