//go:build unit
// +build unit

package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-faster/errors"
	gomock "github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core/mock_core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackendName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Target
		wantErr bool
	}{
		{name: "platform and device", in: "qcs:Aspen-4-4Q-A", want: Target{Platform: "qcs", Device: "Aspen-4-4Q-A"}},
		{name: "platform only", in: "tnqvm", want: Target{Platform: "tnqvm"}},
		{name: "trailing colon", in: "ibm:", want: Target{Platform: "ibm"}},
		{name: "surrounding spaces", in: " qpp : local ", want: Target{Platform: "qpp", Device: "local"}},
		{name: "empty", in: "", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
		{name: "no platform", in: ":Aspen", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackendName(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrInvalidArgument))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "qcs:Aspen", Target{Platform: "qcs", Device: "Aspen"}.String())
	assert.Equal(t, "tnqvm", Target{Platform: "tnqvm"}.String())
}

func TestNew(t *testing.T) {
	s, err := New("qcs:Aspen-4-4Q-A", 4)
	require.Nil(t, err)
	_, err = uuid.Parse(s.ID())
	assert.Nil(t, err)
	assert.Equal(t, "qcs:Aspen-4-4Q-A", s.BackendName())
	assert.Equal(t, Target{Platform: "qcs", Device: "Aspen-4-4Q-A"}, s.Target())
	assert.Equal(t, 4, s.Qubits().Capacity())
	assert.Equal(t, RootName, s.Root().Name())
	assert.Same(t, s.Root(), s.Current())
	assert.False(t, s.FlattenComplete())
	assert.Equal(t, "root {\n}\n", s.Render())

	_, err = New("", 4)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, err := New("tnqvm", 0)
	require.Nil(t, err)
	b, err := New("tnqvm", 0)
	require.Nil(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, qubit.DefaultCapacity, a.Qubits().Capacity())
}

func TestBellPair(t *testing.T) {
	ctx := context.Background()
	s, err := New("qpp", 2)
	require.Nil(t, err)
	ids, err := s.Allocate(2)
	require.Nil(t, err)
	assert.Equal(t, []qubit.ID{0, 1}, ids)

	require.Nil(t, s.Apply(ctx, translator.Operation{Gate: translator.H, Target: ids[0]}))
	require.Nil(t, s.Apply(ctx, translator.Operation{Gate: translator.X, Controls: ids[:1], Target: ids[1]}))
	r, err := s.Measure(ctx, []translator.Pauli{translator.PauliZ, translator.PauliZ}, ids)
	assert.Nil(t, err)
	assert.Equal(t, translator.Zero, r)

	want := heredoc.Doc(`
		root {
		H q0
		CX q0 q1
		}
	`)
	assert.Equal(t, want, s.Render())

	report := s.Report()
	assert.Equal(t, s.ID(), report.SessionID)
	assert.Equal(t, "qpp", report.Platform)
	assert.Equal(t, "", report.Device)
	assert.Equal(t, 2, report.QubitsUsed)
	assert.Equal(t, 2, report.Instructions)
}

func TestApplyRejectsUnallocatedQubits(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		op   translator.Operation
	}{
		{name: "target", op: translator.Operation{Gate: translator.H, Target: 1}},
		{name: "control", op: translator.Operation{Gate: translator.X, Controls: []qubit.ID{3}, Target: 0}},
		{name: "negative", op: translator.Operation{Gate: translator.Z, Target: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("qpp", 4)
			require.Nil(t, err)
			_, err = s.Allocate(1)
			require.Nil(t, err)
			err = s.Apply(ctx, tt.op)
			assert.True(t, errors.Is(err, common.ErrInvalidArgument))
			assert.Equal(t, 0, s.Root().NumInstructions())
		})
	}

	s, err := New("qpp", 4)
	require.Nil(t, err)
	_, err = s.Measure(ctx, []translator.Pauli{translator.PauliZ}, []qubit.ID{0})
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestAllocateOverCapacity(t *testing.T) {
	s, err := New("qpp", 2)
	require.Nil(t, err)
	_, err = s.Allocate(3)
	assert.True(t, errors.Is(err, common.ErrResourceExhausted))
	assert.Equal(t, 0, s.Qubits().UsedCount())
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	s, err := New("qcs:Aspen", 2)
	require.Nil(t, err)
	ids, err := s.Allocate(1)
	require.Nil(t, err)
	require.Nil(t, s.Apply(ctx, translator.Operation{Gate: translator.H, Target: ids[0]}))

	b := &core.RecordingBackend{}
	assert.Nil(t, s.Close(ctx, b))
	require.Len(t, b.Submissions, 1)
	sub := b.Submissions[0]
	assert.Equal(t, s.ID(), sub.SessionID)
	assert.Equal(t, "qcs:Aspen", sub.BackendName)
	assert.Equal(t, "qcs", sub.Platform)
	assert.Equal(t, "Aspen", sub.Device)
	assert.Same(t, s.Root(), sub.Root)
	assert.Equal(t, 1, sub.Report.Instructions)
	assert.Equal(t, 1, sub.Report.QubitsUsed)

	err = s.Close(ctx, b)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
	assert.Len(t, b.Submissions, 1)

	_, err = s.Allocate(1)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
	err = s.Apply(ctx, translator.Operation{Gate: translator.H, Target: ids[0]})
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
	_, err = s.Measure(ctx, nil, nil)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestCloseSubmitsToEveryBackend(t *testing.T) {
	ctx := context.Background()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	failing := mock_core.NewMockBackend(mockCtrl)
	failing.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)
	other := mock_core.NewMockBackend(mockCtrl)
	other.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(fmt.Errorf("closed pipe")).Times(1)
	recording := &core.RecordingBackend{}

	s, err := New("qpp", 1)
	require.Nil(t, err)
	err = s.Close(ctx, failing, recording, other)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "closed pipe")
	assert.Len(t, recording.Submissions, 1)
}
