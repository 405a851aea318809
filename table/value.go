package table

import (
	"strconv"
)

// Kind identifies the primitive type held by a [Value].
type Kind int

const (
	// KindNull marks an absent cell.
	KindNull Kind = iota
	// KindInt marks an integer cell.
	KindInt
	// KindFloat marks a floating-point cell.
	KindFloat
	// KindString marks a text cell.
	KindString
)

// Value is a single typed table cell. The zero value is the null cell.
type Value struct {
	s    string
	i    int64
	f    float64
	kind Kind
}

// Null returns the absent-value cell.
func Null() Value {
	return Value{kind: KindNull}
}

// Int returns an integer cell.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating-point cell.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// String returns a text cell.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Parse converts a raw field into the most appropriate cell: integer, else
// float, else text. An empty field becomes the null cell.
func Parse(field string) Value {
	if field == "" {
		return Null()
	}

	if i, err := strconv.ParseInt(field, 10, 64); err == nil {
		return Int(i)
	}

	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return Float(f)
	}

	return String(field)
}

// Kind returns the cell's type tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is absent.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IntValue returns the integer held by the cell. It is only meaningful for
// [KindInt] cells.
func (v Value) IntValue() int64 {
	return v.i
}

// FloatValue returns the float held by the cell. It is only meaningful for
// [KindFloat] cells.
func (v Value) FloatValue() float64 {
	return v.f
}

// StringValue returns the text held by the cell. It is only meaningful for
// [KindString] cells.
func (v Value) StringValue() string {
	return v.s
}

// Numeric returns the cell's value as a float64 and true when the cell is an
// integer or a float, false otherwise.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}

	return 0, false
}

// Format renders the cell as it appears in a delimited text field. Integer
// cells render in decimal, float cells in the shortest representation that
// parses back exactly, and null cells as the empty field.
func (v Value) Format() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}

	return ""
}
