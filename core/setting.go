package core

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"go.uber.org/zap"
)

var globalSetting *Setting

// Setting holds the per-component tables of the setting file, e.g.
//
//	[com.qubit_manager]
//	capacity = 50
//
// Registered defaults are replaced by the decoded tables, which arrive as
// map[string]interface{}; components convert them themselves.
type Setting struct {
	ComponentSetting map[string]interface{} `toml:"com,omitempty"`
}

func newSetting() *Setting {
	return &Setting{
		ComponentSetting: make(map[string]interface{}),
	}
}

func ResetSetting() {
	globalSetting = newSetting()
}

func RegisterSetting(settingName string, settingVal interface{}) {
	if globalSetting == nil {
		ResetSetting()
	}
	globalSetting.registerSetting(settingName, settingVal)
}

func ParseSettingFromPath(settingsPath string) error {
	tomlString, err := common.ReadSettingsFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return err
	}
	return globalSetting.parseSetting(tomlString)
}

// ParseSettingFromPathIfExists keeps the registered defaults when the file is missing.
func ParseSettingFromPathIfExists(settingsPath string) error {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		zap.L().Info(fmt.Sprintf("setting file is not found, use defaults/path:%s", settingsPath))
		return nil
	}
	return ParseSettingFromPath(settingsPath)
}

func GetGlobalSetting() *Setting {
	return globalSetting
}

func GetComponentSetting(name string) (interface{}, bool) {
	if globalSetting == nil {
		zap.L().Error("Setting is not initialized")
		return nil, false
	}
	val, ok := globalSetting.ComponentSetting[name]
	return val, ok
}

func (s *Setting) registerSetting(settingName string, settingVal interface{}) {
	s.ComponentSetting[settingName] = settingVal
}

func (s *Setting) parseSetting(tomlString string) error {
	md, err := toml.Decode(tomlString, s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		zap.L().Warn(fmt.Sprintf("unknown setting keys:%v", undecoded))
	}
	zap.L().Debug(fmt.Sprintf("Setting is %v", s.ComponentSetting))
	return nil
}
