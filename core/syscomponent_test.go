//go:build unit
// +build unit

package core

import (
	"context"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/dig"
)

func TestSystemComponentsSetup(t *testing.T) {
	rb := &RecordingBackend{}
	s := newSCWithBackend(rb)
	assert.Equal(t, s, GetSystemComponents())

	b, err := s.GetBackend()
	assert.Nil(t, err)
	assert.Nil(t, b.Submit(context.Background(), &Submission{SessionID: "s1"}))
	assert.Len(t, rb.Submissions, 1)
	assert.Nil(t, s.TearDown())
}

func TestSCWithUnimplementedContainer(t *testing.T) {
	s := SCWithUnimplementedContainer()
	assert.Equal(t, s, GetSystemComponents())

	b, err := s.GetBackend()
	assert.Nil(t, err)
	assert.IsType(t, &UnimplementedBackend{}, b)
	assert.Nil(t, b.Submit(context.Background(), &Submission{SessionID: "s1"}))
	assert.Nil(t, s.TearDown())
}

func TestSystemComponentsSetupError(t *testing.T) {
	container := dig.New()
	assert.Nil(t, container.Provide(func() Backend { return &setupErrorBackendForTest{} }))
	s := NewSystemComponents(container)
	err := s.Setup(&Conf{})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "backend setup error")
}

func TestSystemComponentsWithoutBackend(t *testing.T) {
	s := NewSystemComponents(dig.New())
	assert.NotNil(t, s.Setup(&Conf{}))
	_, err := s.GetBackend()
	assert.NotNil(t, err)
}

func TestReportString(t *testing.T) {
	ts, err := strfmt.ParseDateTime("2026-10-18T09:00:00.000Z")
	assert.Nil(t, err)
	r := &Report{
		SessionID:    "s1",
		BackendName:  "tnqvm",
		Platform:     "tnqvm",
		QubitsUsed:   2,
		Instructions: 3,
		StartedAt:    ts,
		EndedAt:      ts,
	}
	assert.JSONEq(t,
		`{"session_id":"s1","backend_name":"tnqvm","platform":"tnqvm","qubits_used":2,"instructions":3,`+
			`"started_at":"2026-10-18T09:00:00.000Z","ended_at":"2026-10-18T09:00:00.000Z"}`,
		r.String())
}
