package jsontable

import "fmt"

// Keys the flattener substitutes where a document offers none.
const (
	// RootKey names the column of a record that is not an object.
	RootKey = "value"
	// BlankKey replaces an empty object key, which cannot be told apart
	// from an empty header cell.
	BlankKey = "(blank)"
)

// Flatten lays records out in a new [Matrix], one record block per element.
//
// Fields of an object share a row, array elements stack downward from the
// record's first row, and nested object fields become sub-columns grouped
// under their parent's column. Header labels are left as full key paths;
// call [Matrix.RemoveHeaderDuplicates] before rendering.
func Flatten(records []Value) *Matrix {
	m := NewMatrix()
	f := flattener{m: m}
	for _, rec := range records {
		m.NewLine()
		f.record(rec)
	}
	return m
}

type flattener struct {
	m    *Matrix
	path []string
}

func (f *flattener) record(v Value) {
	if obj, ok := v.(*Object); ok {
		f.members(obj, false)
		return
	}
	f.visit(RootKey, v, false)
}

// members visits the entries of an object: the first inherits sameRow, the
// rest share the row.
func (f *flattener) members(obj *Object, sameRow bool) {
	if obj == nil {
		return
	}
	for i, mem := range obj.Members {
		f.visit(mem.Key, mem.Value, sameRow || i > 0)
	}
}

func (f *flattener) visit(key string, v Value, sameRow bool) {
	if key == "" {
		key = BlankKey
	}
	f.path = append(f.path, key)
	defer func() { f.path = f.path[:len(f.path)-1] }()
	f.value(v, sameRow)
}

func (f *flattener) value(v Value, sameRow bool) {
	switch val := v.(type) {
	case *Object:
		f.m.ChildHeader()
		f.members(val, sameRow)
		f.m.ParentHeader()
	case Array:
		for i, elem := range val {
			f.value(elem, i == 0)
		}
	case Scalar:
		f.m.Inject(f.m.Column(f.path...), sameRow, val.Text)
	case nil:
		f.m.Inject(f.m.Column(f.path...), sameRow, Null().Text)
	default:
		panic(fmt.Sprintf("jsontable: unsupported value %T", v))
	}
}
