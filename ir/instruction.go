package ir

import (
	"strconv"
	"strings"

	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
)

// Instruction is a node of the IR tree. Gates are leaves, composites hold
// an ordered list of children.
type Instruction interface {
	Name() string
	Bits() []int
	Bit(idx int) (int, error)
	Parameters() []Parameter
	Parameter(idx int) (Parameter, error)
	SetParameter(idx int, p Parameter) error
	IsComposite() bool
	String() string
}

// Gate is a primitive instruction. Its bits and parameter slots are fixed
// when it is created.
type Gate struct {
	name   string
	bits   []int
	params []Parameter
}

func NewGate(name string, bits ...int) *Gate {
	return &Gate{
		name:   name,
		bits:   append([]int{}, bits...),
		params: []Parameter{},
	}
}

func NewParameterizedGate(name string, bit int, angle float64) *Gate {
	return &Gate{
		name:   name,
		bits:   []int{bit},
		params: []Parameter{NewFloatParameter(angle)},
	}
}

func (g *Gate) Name() string {
	return g.name
}

func (g *Gate) Bits() []int {
	return append([]int{}, g.bits...)
}

func (g *Gate) Bit(idx int) (int, error) {
	if idx < 0 || idx >= len(g.bits) {
		return 0, common.NewIndexOutOfRangeError("bit", idx, len(g.bits))
	}
	return g.bits[idx], nil
}

func (g *Gate) Parameters() []Parameter {
	return append([]Parameter{}, g.params...)
}

func (g *Gate) Parameter(idx int) (Parameter, error) {
	if idx < 0 || idx >= len(g.params) {
		return Parameter{}, common.NewIndexOutOfRangeError("parameter", idx, len(g.params))
	}
	return g.params[idx], nil
}

func (g *Gate) SetParameter(idx int, p Parameter) error {
	if idx < 0 || idx >= len(g.params) {
		return common.NewIndexOutOfRangeError("parameter", idx, len(g.params))
	}
	g.params[idx] = p
	return nil
}

func (g *Gate) IsComposite() bool {
	return false
}

// String renders "<name> <param>... q<bit>...".
func (g *Gate) String() string {
	var sb strings.Builder
	sb.WriteString(g.name)
	for _, p := range g.params {
		sb.WriteString(" ")
		sb.WriteString(p.String())
	}
	for _, b := range g.bits {
		sb.WriteString(" q")
		sb.WriteString(strconv.Itoa(b))
	}
	return sb.String()
}
