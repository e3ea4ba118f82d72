//go:build unit
// +build unit

package ir

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/stretchr/testify/assert"
)

func TestGateString(t *testing.T) {
	tests := []struct {
		name string
		gate *Gate
		want string
	}{
		{name: "single qubit", gate: NewGate("H", 0), want: "H q0"},
		{name: "two qubits", gate: NewGate("CX", 0, 1), want: "CX q0 q1"},
		{name: "rotation", gate: NewParameterizedGate("Rz", 2, 1.5707963267948966), want: "Rz 1.5707963267948966 q2"},
		{name: "no bits", gate: NewGate("barrier"), want: "barrier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.String())
			assert.False(t, tt.gate.IsComposite())
		})
	}
}

func TestGateIndexAccess(t *testing.T) {
	g := NewParameterizedGate("Rx", 3, 0.5)

	b, err := g.Bit(0)
	assert.Nil(t, err)
	assert.Equal(t, 3, b)

	_, err = g.Bit(1)
	var oor *common.IndexOutOfRangeError
	assert.True(t, errors.As(err, &oor))
	assert.Equal(t, 1, oor.Index)

	p, err := g.Parameter(0)
	assert.Nil(t, err)
	assert.Equal(t, 0.5, p.Float64())

	assert.Nil(t, g.SetParameter(0, NewFloatParameter(-0.5)))
	assert.Equal(t, "Rx -0.5 q3", g.String())

	err = g.SetParameter(1, NewFloatParameter(1))
	assert.True(t, errors.Is(err, common.ErrIndexOutOfRange))
	_, err = g.Parameter(-1)
	assert.True(t, errors.Is(err, common.ErrIndexOutOfRange))
	assert.Len(t, g.Parameters(), 1)
}

func TestGateBitsAreCopied(t *testing.T) {
	bits := []int{0, 1}
	g := NewGate("CX", bits...)
	bits[0] = 5
	got := g.Bits()
	got[1] = 9
	assert.Equal(t, []int{0, 1}, g.Bits())
}

func TestCompositeString(t *testing.T) {
	root := NewComposite("root")
	root.AddInstruction(NewGate("H", 0))
	root.AddInstruction(NewGate("CX", 0, 1))
	assert.True(t, root.IsComposite())
	assert.Equal(t, 2, root.NumInstructions())
	assert.Equal(t, "root {\nH q0\nCX q0 q1\n}\n", root.String())

	empty := NewComposite("empty")
	assert.Equal(t, "empty {\n}\n", empty.String())
}

func TestNestedCompositeString(t *testing.T) {
	inner := NewComposite("inner")
	inner.AddInstruction(NewGate("X", 1))
	root := NewComposite("root")
	root.AddInstruction(NewGate("H", 0))
	root.AddInstruction(inner)

	want := heredoc.Doc(`
		root {
		H q0
		inner {
		X q1
		}

		}
	`)
	assert.Equal(t, want, root.String())
}

func TestCompositeParameters(t *testing.T) {
	c := NewComposite("kernel")
	_, err := c.Parameter(0)
	assert.True(t, errors.Is(err, common.ErrIndexOutOfRange))

	c.AddArgument("theta")
	assert.Nil(t, c.SetParameter(0, NewFloatParameter(0.25)))
	p, err := c.Parameter(0)
	assert.Nil(t, err)
	assert.Equal(t, Text, p.Kind())
	assert.True(t, p.Equal(NewFloatParameter(0.25)))
	assert.Equal(t, []Parameter{NewTextParameter("0.25")}, c.Parameters())

	c.SetBits([]int{2, 3})
	b, err := c.Bit(1)
	assert.Nil(t, err)
	assert.Equal(t, 3, b)
	_, err = c.Bit(2)
	assert.True(t, errors.Is(err, common.ErrIndexOutOfRange))
}

func TestCompositeInstructionsAreCopied(t *testing.T) {
	c := NewComposite("root")
	c.AddInstruction(NewGate("X", 0))
	insts := c.Instructions()
	insts[0] = NewGate("Y", 0)
	assert.Equal(t, "X q0", c.Instructions()[0].String())
}
