package core

import (
	"context"
	"fmt"

	"go.uber.org/dig"
)

const MockMaxQubits int = 10

type UnimplementedBackend struct{}

func (u *UnimplementedBackend) Setup(*Conf) error {
	return nil
}

func (u *UnimplementedBackend) Submit(context.Context, *Submission) error {
	return nil
}

func (u *UnimplementedBackend) TearDown() error {
	return nil
}

// RecordingBackend keeps every submission it receives.
type RecordingBackend struct {
	UnimplementedBackend
	Submissions []*Submission
}

func (r *RecordingBackend) Submit(_ context.Context, sub *Submission) error {
	r.Submissions = append(r.Submissions, sub)
	return nil
}

type setupErrorBackendForTest struct {
	UnimplementedBackend
}

func (setupErrorBackendForTest) Setup(*Conf) error {
	return fmt.Errorf("backend setup error")
}

func SCWithUnimplementedContainer() *SystemComponents {
	return newSCWithBackend(&UnimplementedBackend{})
}

func newSCWithBackend(b Backend) *SystemComponents {
	container := dig.New()
	if err := container.Provide(func() Backend { return b }); err != nil {
		panic(err)
	}
	s := NewSystemComponents(container)
	if err := s.Setup(&Conf{MaxQubits: MockMaxQubits}); err != nil {
		panic(err)
	}
	return s
}
