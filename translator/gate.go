package translator

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
)

type Gate int

const (
	H Gate = iota
	X
	Y
	Z
	S
	T
	R
	M
)

func (g Gate) String() string {
	switch g {
	case H:
		return "H"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case S:
		return "S"
	case T:
		return "T"
	case R:
		return "R"
	case M:
		return "M"
	default:
		return "unknown"
	}
}

func ParseGate(s string) (Gate, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H":
		return H, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	case "S":
		return S, nil
	case "T":
		return T, nil
	case "R":
		return R, nil
	case "M", "MEASURE":
		return M, nil
	default:
		return 0, errors.Wrapf(common.ErrInvalidArgument, "unknown gate:%q", s)
	}
}

type Pauli int

const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

func (p Pauli) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "unknown"
	}
}

func ParsePauli(s string) (Pauli, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return PauliI, nil
	case "X":
		return PauliX, nil
	case "Y":
		return PauliY, nil
	case "Z":
		return PauliZ, nil
	default:
		return 0, errors.Wrapf(common.ErrInvalidArgument, "unknown basis:%q", s)
	}
}

// rotationName returns the primitive rotation for basis. ok is false for
// the identity, which emits nothing.
func rotationName(basis Pauli) (name string, ok bool, err error) {
	switch basis {
	case PauliX:
		return "Rx", true, nil
	case PauliY:
		return "Ry", true, nil
	case PauliZ:
		return "Rz", true, nil
	case PauliI:
		return "", false, nil
	default:
		return "", false, errors.Wrapf(common.ErrInvalidArgument, "unknown basis:%d", int(basis))
	}
}

// Operation is one gate application issued by the host. Basis and Angle
// are only read for R.
type Operation struct {
	Gate     Gate
	Adjoint  bool
	Controls []qubit.ID
	Target   qubit.ID
	Basis    Pauli
	Angle    float64
}

func (o Operation) String() string {
	var sb strings.Builder
	if len(o.Controls) > 0 {
		sb.WriteString("Controlled ")
	}
	if o.Adjoint {
		sb.WriteString("Adjoint ")
	}
	sb.WriteString(o.Gate.String())
	return sb.String()
}

type Result int

const (
	Zero Result = iota
	One
)

func (r Result) String() string {
	if r == One {
		return "One"
	}
	return "Zero"
}
