package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFilePattern = "adapter-%Y-%m-%d.log"

// NewLogger tees an optional rotating file core and a stdout core.
func NewLogger(conf *core.Conf) (*zap.Logger, error) {
	encoder := newEncoder(conf.DevMode)
	level := ParseLevel(conf.LogLevel)

	cores := []zapcore.Core{}
	if conf.EnableFileLog {
		rotator, err := makeRotator(conf.LogDir, conf.LogRotationMaxDays)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}
	if !conf.DisableStdoutLog {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// SetZap installs the logger built from conf as the global logger.
func SetZap(conf *core.Conf) (*zap.Logger, error) {
	logger, err := NewLogger(conf)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	zap.L().Info("Starting logger")
	zap.L().Info(fmt.Sprintf("DevMode is %t", conf.DevMode))
	if conf.EnableFileLog {
		zap.L().Info(fmt.Sprintf("Log rotation max days is %d", conf.LogRotationMaxDays))
	}
	return logger, nil
}

func ParseLevel(s string) zap.AtomicLevel {
	switch s {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

func newEncoder(devMode bool) zapcore.Encoder {
	if devMode {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	c := zap.NewProductionEncoderConfig()
	c.EncodeTime = zapcore.ISO8601TimeEncoder
	c.TimeKey = "timestamp"
	return zapcore.NewJSONEncoder(c)
}

func makeRotator(dirPath string, rotationMaxDays int) (*rotate.RotateLogs, error) {
	if err := common.IsDirWritable(dirPath); err != nil {
		return nil, fmt.Errorf("failed to use log dir %s: %w", dirPath, err)
	}
	if rotationMaxDays <= 0 {
		rotationMaxDays = 1
	}
	return rotate.New(
		filepath.Join(dirPath, logFilePattern),
		rotate.WithMaxAge(time.Duration(rotationMaxDays)*24*time.Hour),
		rotate.WithRotationTime(time.Hour))
}
