package ir

import (
	"github.com/go-faster/jx"
)

// MarshalJSON encodes an instruction tree. Parameters keep their kind:
// ints and floats as numbers, text as strings and empty slots as null.
func MarshalJSON(inst Instruction) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodeInstruction(e, inst)
	return append([]byte(nil), e.Bytes()...)
}

func encodeInstruction(e *jx.Encoder, inst Instruction) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(inst.Name())
	e.FieldStart("composite")
	e.Bool(inst.IsComposite())
	e.FieldStart("bits")
	e.ArrStart()
	for _, b := range inst.Bits() {
		e.Int(b)
	}
	e.ArrEnd()
	e.FieldStart("params")
	e.ArrStart()
	for _, p := range inst.Parameters() {
		encodeParameter(e, p)
	}
	e.ArrEnd()
	if c, ok := inst.(*Composite); ok {
		e.FieldStart("instructions")
		e.ArrStart()
		for _, child := range c.instructions {
			encodeInstruction(e, child)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func encodeParameter(e *jx.Encoder, p Parameter) {
	switch p.kind {
	case Int:
		e.Int64(p.i)
	case Float:
		e.Float64(p.f)
	case Text:
		e.Str(p.s)
	default:
		e.Null()
	}
}

// Walk visits inst and its descendants depth first. Returning an error
// from fn stops the walk.
func Walk(inst Instruction, fn func(depth int, inst Instruction) error) error {
	return walk(0, inst, fn)
}

func walk(depth int, inst Instruction, fn func(int, Instruction) error) error {
	if err := fn(depth, inst); err != nil {
		return err
	}
	if !inst.IsComposite() {
		return nil
	}
	c, ok := inst.(*Composite)
	if !ok {
		return nil
	}
	for _, child := range c.instructions {
		if err := walk(depth+1, child, fn); err != nil {
			return err
		}
	}
	return nil
}

// CountGates returns the number of primitive gates below inst.
func CountGates(inst Instruction) int {
	n := 0
	_ = Walk(inst, func(_ int, i Instruction) error {
		if !i.IsComposite() {
			n++
		}
		return nil
	})
	return n
}
