package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/ir"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/translator"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const RootName = "root"

// Session is one program execution. It owns the qubit manager and the root
// composite; neither is shared with other sessions. Calls must not overlap.
type Session struct {
	id          string
	backendName string
	target      Target
	qubits      *qubit.Manager
	root        *ir.Composite
	translator  *translator.Translator
	startedAt   time.Time
	endedAt     time.Time
	closed      bool

	// set once measurement-dependent branches are resolved; never set yet
	flattenComplete bool
}

func New(backendName string, capacity int) (*Session, error) {
	target, err := ParseBackendName(backendName)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:          uuid.NewString(),
		backendName: backendName,
		target:      target,
		qubits:      qubit.NewManager(capacity),
		root:        ir.NewComposite(RootName),
		translator:  translator.New(),
		startedAt:   time.Now(),
	}
	zap.L().Info("session started",
		zap.String("session_id", s.id),
		zap.String("backend", target.String()),
		zap.Int("capacity", s.qubits.Capacity()))
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) BackendName() string {
	return s.backendName
}

func (s *Session) Target() Target {
	return s.target
}

func (s *Session) Qubits() *qubit.Manager {
	return s.qubits
}

func (s *Session) Root() *ir.Composite {
	return s.root
}

// Current is the composite new instructions are appended to.
func (s *Session) Current() *ir.Composite {
	return s.root
}

func (s *Session) FlattenComplete() bool {
	return s.flattenComplete
}

func (s *Session) Allocate(count int) ([]qubit.ID, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.qubits.AllocateMany(count)
}

func (s *Session) Apply(ctx context.Context, op translator.Operation) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.checkAllocated(append(append([]qubit.ID{}, op.Controls...), op.Target)); err != nil {
		return err
	}
	return s.translator.Apply(ctx, s.Current(), op)
}

func (s *Session) Measure(ctx context.Context, bases []translator.Pauli, qubits []qubit.ID) (translator.Result, error) {
	if err := s.checkOpen(); err != nil {
		return translator.Zero, err
	}
	if err := s.checkAllocated(qubits); err != nil {
		return translator.Zero, err
	}
	return s.translator.Measure(ctx, s.Current(), bases, qubits)
}

func (s *Session) Render() string {
	return s.root.String()
}

func (s *Session) Report() *core.Report {
	ended := s.endedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	return &core.Report{
		SessionID:    s.id,
		BackendName:  s.backendName,
		Platform:     s.target.Platform,
		Device:       s.target.Device,
		QubitsUsed:   s.qubits.UsedCount(),
		Instructions: ir.CountGates(s.root),
		StartedAt:    strfmt.DateTime(s.startedAt),
		EndedAt:      strfmt.DateTime(ended),
	}
}

// Close ends the session and submits its IR to every backend. All
// backends are tried; their errors are combined.
func (s *Session) Close(ctx context.Context, backends ...core.Backend) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	s.closed = true
	s.endedAt = time.Now()
	report := s.Report()
	sub := &core.Submission{
		SessionID:   s.id,
		BackendName: s.backendName,
		Platform:    s.target.Platform,
		Device:      s.target.Device,
		Root:        s.root,
		Report:      report,
	}
	var err error
	for _, b := range backends {
		if subErr := b.Submit(ctx, sub); subErr != nil {
			zap.L().Error(fmt.Sprintf("failed to submit session/id:%s/reason:%s", s.id, subErr))
			err = multierr.Append(err, subErr)
		}
	}
	zap.L().Info("session closed",
		zap.String("session_id", s.id),
		zap.Int("qubits_used", report.QubitsUsed),
		zap.Int("instructions", report.Instructions),
		zap.Duration("elapsed", s.endedAt.Sub(s.startedAt)))
	zap.L().Debug(fmt.Sprintf("session report:%s", report))
	return err
}

func (s *Session) checkOpen() error {
	if s.closed {
		return errors.Wrapf(common.ErrInvalidArgument, "session %s is closed", s.id)
	}
	return nil
}

func (s *Session) checkAllocated(ids []qubit.ID) error {
	for _, id := range ids {
		if !s.qubits.IsValid(id) {
			return errors.Wrapf(common.ErrInvalidArgument, "qubit %d is not allocated", id)
		}
	}
	return nil
}
