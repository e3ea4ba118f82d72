package ir

import (
	"fmt"
	"strconv"
)

type ParameterKind int

const (
	Empty ParameterKind = iota
	Int
	Float
	Text
)

func (k ParameterKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Parameter is a scalar gate or composite argument. The zero value is empty.
//
// Two parameters are equal when their canonical strings match, so Int(1)
// equals Text("1") while Float(1.0) does not equal Float(1.00000001).
// Numeric conversions parse the canonical string and fall back to zero,
// which loses precision for floats read as ints and for 32-bit reads.
type Parameter struct {
	kind ParameterKind
	i    int64
	f    float64
	fbit int
	s    string
}

func NewIntParameter(v int64) Parameter {
	return Parameter{kind: Int, i: v}
}

func NewFloatParameter(v float64) Parameter {
	return Parameter{kind: Float, f: v, fbit: 64}
}

func NewFloat32Parameter(v float32) Parameter {
	return Parameter{kind: Float, f: float64(v), fbit: 32}
}

func NewTextParameter(v string) Parameter {
	return Parameter{kind: Text, s: v}
}

// ParameterOf wraps a host value. Unsupported types are kept as text.
func ParameterOf(v any) Parameter {
	switch t := v.(type) {
	case nil:
		return Parameter{}
	case Parameter:
		return t
	case int:
		return NewIntParameter(int64(t))
	case int32:
		return NewIntParameter(int64(t))
	case int64:
		return NewIntParameter(t)
	case float32:
		return NewFloat32Parameter(t)
	case float64:
		return NewFloatParameter(t)
	case string:
		return NewTextParameter(t)
	default:
		return NewTextParameter(fmt.Sprint(t))
	}
}

func (p Parameter) Kind() ParameterKind {
	return p.kind
}

func (p Parameter) IsEmpty() bool {
	return p.kind == Empty
}

func (p Parameter) String() string {
	switch p.kind {
	case Int:
		return strconv.FormatInt(p.i, 10)
	case Float:
		return strconv.FormatFloat(p.f, 'g', -1, p.fbit)
	case Text:
		return p.s
	default:
		return ""
	}
}

func (p Parameter) Equal(o Parameter) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() && o.IsEmpty()
	}
	return p.String() == o.String()
}

func (p Parameter) Int() int {
	v, err := strconv.Atoi(p.String())
	if err != nil {
		return 0
	}
	return v
}

func (p Parameter) Int64() int64 {
	v, err := strconv.ParseInt(p.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (p Parameter) Float32() float32 {
	v, err := strconv.ParseFloat(p.String(), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

func (p Parameter) Float64() float64 {
	v, err := strconv.ParseFloat(p.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
