package backend

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/log"
	"go.uber.org/zap"
)

const (
	FileBackendSettingName = "file_backend"
	defaultFilePrefix      = "session"
	fileExtension          = "ir"
)

type FileBackendSetting struct {
	Prefix string `toml:"prefix"`
}

func NewFileBackendSetting() FileBackendSetting {
	return FileBackendSetting{
		Prefix: defaultFilePrefix,
	}
}

func FileBackendSettingFrom(v interface{}) FileBackendSetting {
	s := NewFileBackendSetting()
	switch t := v.(type) {
	case FileBackendSetting:
		s = t
	case *FileBackendSetting:
		s = *t
	case map[string]interface{}:
		if p, ok := t["prefix"].(string); ok {
			s.Prefix = p
		}
	}
	if s.Prefix == "" {
		s.Prefix = defaultFilePrefix
	}
	return s
}

// FileBackend appends each session to a daily file <prefix>-YYYY-MM-DD.ir
// in the output dir, headed by "# session <id> backend <name>".
type FileBackend struct {
	setting FileBackendSetting
	writer  *rotate.RotateLogs
}

func (b *FileBackend) Setup(conf *core.Conf) error {
	v, _ := core.GetComponentSetting(FileBackendSettingName)
	b.setting = FileBackendSettingFrom(v)
	w, err := log.NewDailyFile(conf.OutputDir, b.setting.Prefix, fileExtension)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to set up file backend/dir:%s/reason:%s", conf.OutputDir, err))
		return err
	}
	b.writer = w
	zap.L().Debug(fmt.Sprintf("file backend writes %s-YYYY-MM-DD.%s to %s", b.setting.Prefix, fileExtension, conf.OutputDir))
	return nil
}

func (b *FileBackend) Submit(_ context.Context, sub *core.Submission) error {
	if err := checkSubmission(sub); err != nil {
		return err
	}
	if b.writer == nil {
		return errors.Wrap(common.ErrInvalidArgument, "file backend is not set up")
	}
	entry := fmt.Sprintf("# session %s backend %s\n%s", sub.SessionID, sub.BackendName, sub.Root.String())
	if _, err := b.writer.Write([]byte(entry)); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write IR file/session:%s/reason:%s", sub.SessionID, err))
		return err
	}
	return nil
}

func (b *FileBackend) TearDown() error {
	if b.writer == nil {
		return nil
	}
	return b.writer.Close()
}
