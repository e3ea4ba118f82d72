package core

import (
	"context"
	"fmt"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var systemComponents *SystemComponents

// Backend consumes the IR of finished sessions.
type Backend interface {
	Setup(*Conf) error
	Submit(context.Context, *Submission) error
	TearDown() error
}

type SystemComponents struct {
	*dig.Container
}

func NewSystemComponents(con *dig.Container) *SystemComponents {
	return &SystemComponents{con}
}

func GetSystemComponents() *SystemComponents {
	return systemComponents
}

func (s *SystemComponents) Setup(conf *Conf) error {
	zap.L().Debug("Setting up backend")
	err := s.Invoke(
		func(b Backend) error {
			return b.Setup(conf)
		})
	if err != nil {
		return err
	}
	systemComponents = s
	return nil
}

func (s *SystemComponents) TearDown() error {
	var tearDownErr error
	err := s.Invoke(
		func(b Backend) {
			tearDownErr = b.TearDown()
		})
	if err != nil {
		return err
	}
	if tearDownErr != nil {
		zap.L().Error(fmt.Sprintf("failed to tear down backend/reason:%s", tearDownErr))
	}
	return tearDownErr
}

func (s *SystemComponents) GetBackend() (Backend, error) {
	var backend Backend
	err := s.Invoke(
		func(b Backend) {
			backend = b
		})
	return backend, err
}
