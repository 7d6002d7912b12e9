package jsontable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidJSON       = errors.New("invalid JSON")
	ErrInvalidYAML       = errors.New("invalid YAML")
	ErrEmptyInput        = errors.New("empty input")
)

// Format represents an output format.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "markdown"
	TSV      Format = "tsv"
)

var formats = []Format{CSV, Markdown, TSV}

var aliases = map[string]Format{
	"md": Markdown,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case. "md" is accepted for
// Markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Params returns the rendering preset of the format.
func (f Format) Params() (Params, error) {
	switch f {
	case CSV:
		return CSVParams(), nil
	case Markdown:
		return MarkdownParams(), nil
	case TSV:
		return TSVParams(), nil
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write renders records in format f and writes the table to w.
func Write(w io.Writer, f Format, records ...Value) error {
	p, err := f.Params()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, Render(records, p))
	return err
}

// Marshal renders records in format f and returns the bytes.
func Marshal(f Format, records ...Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, records...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert parses a JSON document and renders it in format f. A top-level
// array holds the records; any other document is a single record.
func Convert(data []byte, f Format) (string, error) {
	p, err := f.Params()
	if err != nil {
		return "", err
	}
	v, err := Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return Render(Records(v), p), nil
}
