package ir

import (
	"strings"

	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
)

// Composite is a named, append-only container of instructions.
// Arguments are kept in their canonical string form.
type Composite struct {
	name         string
	bits         []int
	args         []string
	instructions []Instruction
}

func NewComposite(name string) *Composite {
	return &Composite{
		name:         name,
		bits:         []int{},
		args:         []string{},
		instructions: []Instruction{},
	}
}

func (c *Composite) AddInstruction(inst Instruction) {
	c.instructions = append(c.instructions, inst)
}

func (c *Composite) NumInstructions() int {
	return len(c.instructions)
}

func (c *Composite) Instructions() []Instruction {
	return append([]Instruction{}, c.instructions...)
}

func (c *Composite) AddArgument(arg string) {
	c.args = append(c.args, arg)
}

func (c *Composite) SetBits(bits []int) {
	c.bits = append([]int{}, bits...)
}

func (c *Composite) Name() string {
	return c.name
}

func (c *Composite) Bits() []int {
	return append([]int{}, c.bits...)
}

func (c *Composite) Bit(idx int) (int, error) {
	if idx < 0 || idx >= len(c.bits) {
		return 0, common.NewIndexOutOfRangeError("bit", idx, len(c.bits))
	}
	return c.bits[idx], nil
}

func (c *Composite) Parameters() []Parameter {
	params := make([]Parameter, 0, len(c.args))
	for _, a := range c.args {
		params = append(params, NewTextParameter(a))
	}
	return params
}

func (c *Composite) Parameter(idx int) (Parameter, error) {
	if idx < 0 || idx >= len(c.args) {
		return Parameter{}, common.NewIndexOutOfRangeError("parameter", idx, len(c.args))
	}
	return NewTextParameter(c.args[idx]), nil
}

func (c *Composite) SetParameter(idx int, p Parameter) error {
	if idx < 0 || idx >= len(c.args) {
		return common.NewIndexOutOfRangeError("parameter", idx, len(c.args))
	}
	c.args[idx] = p.String()
	return nil
}

func (c *Composite) IsComposite() bool {
	return true
}

// String renders the children one per line between braces. Nested
// composites are not indented.
func (c *Composite) String() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	sb.WriteString(" {\n")
	for _, inst := range c.instructions {
		sb.WriteString(inst.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
