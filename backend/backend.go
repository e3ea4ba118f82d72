// Package backend holds the consumers of finished session IR.
package backend

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/ir"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

func checkSubmission(sub *core.Submission) error {
	if sub == nil || sub.Root == nil {
		return errors.Wrap(common.ErrInvalidArgument, "empty submission")
	}
	return nil
}

// StdoutBackend prints the rendered IR. Writer defaults to os.Stdout.
type StdoutBackend struct {
	Writer io.Writer
}

func (b *StdoutBackend) Setup(*core.Conf) error {
	if b.Writer == nil {
		b.Writer = os.Stdout
	}
	return nil
}

func (b *StdoutBackend) Submit(_ context.Context, sub *core.Submission) error {
	if err := checkSubmission(sub); err != nil {
		return err
	}
	if _, err := io.WriteString(b.Writer, sub.Root.String()); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write IR/session:%s/reason:%s", sub.SessionID, err))
		return err
	}
	return nil
}

func (b *StdoutBackend) TearDown() error {
	return nil
}

// JSONBackend prints the IR tree as indented JSON.
type JSONBackend struct {
	Writer io.Writer
}

func (b *JSONBackend) Setup(*core.Conf) error {
	if b.Writer == nil {
		b.Writer = os.Stdout
	}
	return nil
}

func (b *JSONBackend) Submit(_ context.Context, sub *core.Submission) error {
	if err := checkSubmission(sub); err != nil {
		return err
	}
	if _, err := b.Writer.Write(pretty.Pretty(ir.MarshalJSON(sub.Root))); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write IR JSON/session:%s/reason:%s", sub.SessionID, err))
		return err
	}
	return nil
}

func (b *JSONBackend) TearDown() error {
	return nil
}
