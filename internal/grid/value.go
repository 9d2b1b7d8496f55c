package grid

import "strconv"

// Kind enumerates the scalar kinds a cell value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a tagged scalar cell value. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func S(s string) Value  { return Value{kind: KindString, str: s} }
func N(f float64) Value { return Value{kind: KindNumber, num: f} }
func B(v bool) Value    { return Value{kind: KindBool, b: v} }
func Null() Value       { return Value{} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Str() string  { return v.str }
func (v Value) Num() float64 { return v.num }
func (v Value) Bool() bool   { return v.b }

// String returns the display form of the value. Null renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Interface returns the value as a plain Go value for serialization.
// Null maps to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	}
	return nil
}
