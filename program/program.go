// Package program drives a session from a declarative TOML program.
package program

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/translator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/oqtopus-team/oqtopus-engine/iradapter/program"

// Host is the session surface a program runs against.
type Host interface {
	Allocate(count int) ([]qubit.ID, error)
	Apply(ctx context.Context, op translator.Operation) error
	Measure(ctx context.Context, bases []translator.Pauli, qubits []qubit.ID) (translator.Result, error)
	Qubits() *qubit.Manager
}

type Program struct {
	Name   string `toml:"name"`
	Qubits int    `toml:"qubits"`
	Ops    []Op   `toml:"op"`
}

// Op is one [[op]] table. Targets and Bases are only read for measurement;
// a measurement with no bases measures every target in Z.
type Op struct {
	Gate     string   `toml:"gate"`
	Adjoint  bool     `toml:"adjoint"`
	Controls []int    `toml:"controls"`
	Target   int      `toml:"target"`
	Basis    string   `toml:"basis"`
	Angle    float64  `toml:"angle"`
	Targets  []int    `toml:"targets"`
	Bases    []string `toml:"bases"`
}

func Load(path string) (*Program, error) {
	s, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read program/path:%s/reason:%s", path, err))
		return nil, err
	}
	return Parse(s)
}

func Parse(s string) (*Program, error) {
	p := &Program{}
	md, err := toml.Decode(s, p)
	if err != nil {
		return nil, errors.Wrap(common.ErrInvalidArgument, err.Error())
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		zap.L().Warn(fmt.Sprintf("undecoded keys in program:%v", undecoded))
	}
	if p.Qubits < 0 {
		return nil, errors.Wrapf(common.ErrInvalidArgument, "negative qubit count:%d", p.Qubits)
	}
	for i, o := range p.Ops {
		op, err := o.Operation()
		if err == nil && isMeasurement(op) {
			_, _, err = o.measurement()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "op %d", i)
		}
	}
	return p, nil
}

// Operation converts the op into a translator operation. For measurements
// only Gate, Adjoint and Controls are meaningful.
func (o Op) Operation() (translator.Operation, error) {
	g, err := translator.ParseGate(o.Gate)
	if err != nil {
		return translator.Operation{}, err
	}
	op := translator.Operation{
		Gate:     g,
		Adjoint:  o.Adjoint,
		Controls: toIDs(o.Controls),
		Target:   qubit.ID(o.Target),
		Angle:    o.Angle,
	}
	if g == translator.R {
		if o.Basis == "" {
			return translator.Operation{}, errors.Wrap(common.ErrInvalidArgument, "rotation without basis")
		}
		if op.Basis, err = translator.ParsePauli(o.Basis); err != nil {
			return translator.Operation{}, err
		}
	}
	return op, nil
}

func isMeasurement(op translator.Operation) bool {
	return op.Gate == translator.M && !op.Adjoint && len(op.Controls) == 0
}

func (o Op) measurement() ([]translator.Pauli, []qubit.ID, error) {
	targets := o.Targets
	if len(targets) == 0 {
		targets = []int{o.Target}
	}
	bases := make([]translator.Pauli, 0, len(targets))
	if len(o.Bases) == 0 {
		for range targets {
			bases = append(bases, translator.PauliZ)
		}
		return bases, toIDs(targets), nil
	}
	if len(o.Bases) != len(targets) {
		return nil, nil, errors.Wrapf(common.ErrInvalidArgument,
			"%d bases for %d measured qubits", len(o.Bases), len(targets))
	}
	for _, b := range o.Bases {
		p, err := translator.ParsePauli(b)
		if err != nil {
			return nil, nil, err
		}
		bases = append(bases, p)
	}
	return bases, toIDs(targets), nil
}

// Run allocates the declared qubits and applies every op in order. The
// first failing op stops the run.
func (p *Program) Run(ctx context.Context, h Host) (err error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "program.Run",
		trace.WithAttributes(
			attribute.String("program.name", p.Name),
			attribute.Int("program.qubits", p.Qubits),
			attribute.Int("program.ops", len(p.Ops)),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	h.Qubits().OnOperationStart(p.Name)
	defer h.Qubits().OnOperationEnd(p.Name)

	if p.Qubits > 0 {
		if _, err = h.Allocate(p.Qubits); err != nil {
			zap.L().Error(fmt.Sprintf("failed to allocate qubits/program:%s/reason:%s", p.Name, err))
			return err
		}
	}
	for i, o := range p.Ops {
		if err = ctx.Err(); err != nil {
			return errors.Wrapf(err, "op %d", i)
		}
		if err = p.runOp(ctx, h, o); err != nil {
			zap.L().Error(fmt.Sprintf("failed to run op/program:%s/index:%d/reason:%s", p.Name, i, err))
			return errors.Wrapf(err, "op %d", i)
		}
	}
	return nil
}

func (p *Program) runOp(ctx context.Context, h Host, o Op) error {
	op, err := o.Operation()
	if err != nil {
		return err
	}
	if !isMeasurement(op) {
		return h.Apply(ctx, op)
	}
	bases, targets, err := o.measurement()
	if err != nil {
		return err
	}
	r, err := h.Measure(ctx, bases, targets)
	if err != nil {
		return err
	}
	zap.L().Debug(fmt.Sprintf("measured/program:%s/qubits:%v/result:%s", p.Name, targets, r))
	return nil
}

func toIDs(in []int) []qubit.ID {
	if len(in) == 0 {
		return nil
	}
	ids := make([]qubit.ID, 0, len(in))
	for _, i := range in {
		ids = append(ids, qubit.ID(i))
	}
	return ids
}
