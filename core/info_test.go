//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInfo(t *testing.T) {
	SetInfo(&Conf{
		Version:     "v0.3.0",
		LogLevel:    "debug",
		MaxQubits:   12,
		OutputDir:   "./shares/ir",
		SettingPath: "./setting/setting.toml",
	})
	require.NotNil(t, CurrentInfo)
	assert.Equal(t, 12, CurrentInfo.Conf.MaxQubits)
	assert.Equal(t, "debug", CurrentInfo.Conf.LogLevel)
	assert.Equal(t, "./shares/ir", CurrentInfo.Conf.OutputDir)

	s := CurrentInfo.String()
	assert.Contains(t, s, `"MaxQubits":12`)
	assert.Contains(t, s, `"SettingPath":"./setting/setting.toml"`)
	assert.NotContains(t, s, "v0.3.0")
}
