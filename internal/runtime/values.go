package runtime

import (
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the closed set of values a program can produce. Only the types in
// this file implement it.
type Value interface {
	Kind() Kind
	String() string
	valueNode()
}

type NilValue struct{}

type BoolValue struct {
	Val bool
}

type NumberValue struct {
	Val float64
}

type StringValue struct {
	Val string
}

var Nil = NilValue{}

func (NilValue) Kind() Kind    { return KindNil }
func (BoolValue) Kind() Kind   { return KindBool }
func (NumberValue) Kind() Kind { return KindNumber }
func (StringValue) Kind() Kind { return KindString }

func (NilValue) valueNode()    {}
func (BoolValue) valueNode()   {}
func (NumberValue) valueNode() {}
func (StringValue) valueNode() {}

func (NilValue) String() string { return "nil" }

func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

// String prints integral numbers without a fractional part and everything
// else in its shortest decimal form.
func (v NumberValue) String() string {
	return strconv.FormatFloat(v.Val, 'f', -1, 64)
}

func (v StringValue) String() string { return v.Val }

// FromLiteral converts a token literal (float64, string or nil) into a Value.
func FromLiteral(literal any) Value {
	switch l := literal.(type) {
	case float64:
		return NumberValue{Val: l}
	case string:
		return StringValue{Val: l}
	case bool:
		return BoolValue{Val: l}
	}

	return Nil
}

// IsTruthy treats nil and false as falsy and every other value as truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BoolValue:
		return val.Val
	}

	return true
}

// IsEqual compares values of the same kind by value; nil only equals nil.
func IsEqual(a, b Value) bool {
	if isNil(a) && isNil(b) {
		return true
	}
	if isNil(a) {
		return false
	}

	switch left := a.(type) {
	case BoolValue:
		right, ok := b.(BoolValue)
		return ok && left.Val == right.Val
	case NumberValue:
		right, ok := b.(NumberValue)
		return ok && left.Val == right.Val
	case StringValue:
		right, ok := b.(StringValue)
		return ok && left.Val == right.Val
	}

	return false
}

// Stringify renders v the way print shows it.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}

	return v.String()
}

func isNil(v Value) bool {
	if v == nil {
		return true
	}

	return v.Kind() == KindNil
}
