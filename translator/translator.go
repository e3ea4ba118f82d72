package translator

import (
	"context"
	"fmt"
	"math"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/ir"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/oqtopus-team/oqtopus-engine/iradapter/translator"

// Translator turns gate applications into primitive IR instructions. The
// primitive alphabet is H, X, Y, Z, S, Sdg, T, Tdg, Rx, Ry, Rz and CX;
// every supported controlled gate is built around a single CX.
type Translator struct {
	emitted metric.Int64Counter
}

func New() *Translator {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"translator.instructions",
		metric.WithDescription("primitive instructions emitted by the gate translator"),
		metric.WithUnit("{instruction}"),
	)
	if err != nil {
		zap.L().Warn(fmt.Sprintf("failed to create instruction counter/reason:%s", err))
		counter, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("translator.instructions")
	}
	return &Translator{emitted: counter}
}

// Apply appends the decomposition of op to dst.
func (t *Translator) Apply(ctx context.Context, dst *ir.Composite, op Operation) error {
	if dst == nil {
		return errors.Wrap(common.ErrInvalidArgument, "no destination composite")
	}
	before := dst.NumInstructions()
	var err error
	switch len(op.Controls) {
	case 0:
		err = t.applyUncontrolled(ctx, dst, op)
	case 1:
		err = t.applyControlled(ctx, dst, op.Controls[0], op)
	default:
		err = errors.Wrapf(common.ErrNotImplemented,
			"%s with %d control qubits", op, len(op.Controls))
	}
	if err != nil {
		zap.L().Debug(fmt.Sprintf("failed to translate %s/target:%d/reason:%s", op, op.Target, err))
		return err
	}
	zap.L().Debug(fmt.Sprintf("translated %s/target:%d/emitted:%d",
		op, op.Target, dst.NumInstructions()-before))
	return nil
}

// Measure validates the request and returns a placeholder result. No
// instruction is emitted into dst until measurement results can be resolved.
func (t *Translator) Measure(_ context.Context, dst *ir.Composite, bases []Pauli, qubits []qubit.ID) (Result, error) {
	if dst == nil {
		return Zero, errors.Wrap(common.ErrInvalidArgument, "no destination composite")
	}
	if len(bases) != len(qubits) {
		return Zero, errors.Wrapf(common.ErrInvalidArgument,
			"%d bases for %d qubits", len(bases), len(qubits))
	}
	for _, b := range bases {
		if _, _, err := rotationName(b); err != nil {
			return Zero, err
		}
	}
	return Zero, nil
}

func (t *Translator) applyUncontrolled(ctx context.Context, dst *ir.Composite, op Operation) error {
	target := int(op.Target)
	switch op.Gate {
	case H, X, Y, Z:
		// self-inverse
		t.emit(ctx, dst, ir.NewGate(op.Gate.String(), target))
	case S:
		if op.Adjoint {
			t.emit(ctx, dst, ir.NewGate("Sdg", target))
		} else {
			t.emit(ctx, dst, ir.NewGate("S", target))
		}
	case T:
		if op.Adjoint {
			t.emit(ctx, dst, ir.NewGate("Tdg", target))
		} else {
			t.emit(ctx, dst, ir.NewGate("T", target))
		}
	case R:
		angle := op.Angle
		if op.Adjoint {
			angle = -angle
		}
		return t.rotate(ctx, dst, op.Basis, angle, target)
	case M:
		if op.Adjoint {
			return errors.Wrapf(common.ErrNotImplemented, "%s", op)
		}
	default:
		return errors.Wrapf(common.ErrInvalidArgument, "unknown gate:%d", int(op.Gate))
	}
	return nil
}

func (t *Translator) rotate(ctx context.Context, dst *ir.Composite, basis Pauli, angle float64, target int) error {
	name, ok, err := rotationName(basis)
	if err != nil {
		return err
	}
	if ok {
		t.emit(ctx, dst, ir.NewParameterizedGate(name, target, angle))
	}
	return nil
}

func (t *Translator) applyControlled(ctx context.Context, dst *ir.Composite, control qubit.ID, op Operation) error {
	c, target := int(control), int(op.Target)
	switch op.Gate {
	case X:
		t.emit(ctx, dst, ir.NewGate("CX", c, target))
	case H:
		// CH = Ry(pi/4) CX Ry(-pi/4)
		t.emit(ctx, dst, ir.NewParameterizedGate("Ry", target, math.Pi/4))
		t.emit(ctx, dst, ir.NewGate("CX", c, target))
		t.emit(ctx, dst, ir.NewParameterizedGate("Ry", target, -math.Pi/4))
	case Y:
		// CY = Sdg CX S
		t.emit(ctx, dst, ir.NewGate("Sdg", target))
		t.emit(ctx, dst, ir.NewGate("CX", c, target))
		t.emit(ctx, dst, ir.NewGate("S", target))
	case Z:
		// CZ = H CX H
		h := ir.NewGate("H", target)
		t.emit(ctx, dst, h)
		t.emit(ctx, dst, ir.NewGate("CX", c, target))
		t.emit(ctx, dst, h)
	case R:
		angle := op.Angle
		if op.Adjoint {
			angle = -angle
		}
		return t.controlledRotate(ctx, dst, op.Basis, angle, c, target)
	case S, T, M:
		return errors.Wrapf(common.ErrNotImplemented, "%s", op)
	default:
		return errors.Wrapf(common.ErrInvalidArgument, "unknown gate:%d", int(op.Gate))
	}
	return nil
}

// controlledRotate emits CRn(theta) = Rn(theta/2) CX Rn(-theta/2) CX.
func (t *Translator) controlledRotate(ctx context.Context, dst *ir.Composite, basis Pauli, angle float64, control, target int) error {
	name, ok, err := rotationName(basis)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	cx := ir.NewGate("CX", control, target)
	t.emit(ctx, dst, ir.NewParameterizedGate(name, target, angle/2))
	t.emit(ctx, dst, cx)
	t.emit(ctx, dst, ir.NewParameterizedGate(name, target, -angle/2))
	t.emit(ctx, dst, cx)
	return nil
}

func (t *Translator) emit(ctx context.Context, dst *ir.Composite, inst ir.Instruction) {
	dst.AddInstruction(inst)
	t.emitted.Add(ctx, 1, metric.WithAttributes(attribute.String("gate", inst.Name())))
}
