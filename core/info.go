package core

import (
	"fmt"

	"go.uber.org/zap"
)

type NonSecretConf struct {
	DevMode            bool
	DisableStdoutLog   bool
	EnableFileLog      bool
	LogDir             string
	LogLevel           string
	LogRotationMaxDays int
	MaxQubits          int
	OutputDir          string
	SettingPath        string
}

type Info struct {
	Conf *NonSecretConf
}

var CurrentInfo *Info

func SetInfo(c *Conf) {
	conf := &NonSecretConf{
		DevMode:            c.DevMode,
		DisableStdoutLog:   c.DisableStdoutLog,
		EnableFileLog:      c.EnableFileLog,
		LogDir:             c.LogDir,
		LogLevel:           c.LogLevel,
		LogRotationMaxDays: c.LogRotationMaxDays,
		MaxQubits:          c.MaxQubits,
		OutputDir:          c.OutputDir,
		SettingPath:        c.SettingPath,
	}

	CurrentInfo = &Info{
		Conf: conf,
	}
}

func (i *Info) String() string {
	st, err := jsonIter.Marshal(i)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal core.Info/reason:%s", err))
		return ""
	}
	return string(st)
}
