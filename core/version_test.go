//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name               string
		conf               *Conf
		versionByBuildFlag string
		wantVersion        string
	}{
		{
			name:               "version is set by build flag",
			conf:               &Conf{},
			versionByBuildFlag: "v0.3.0",
			wantVersion:        "v0.3.0",
		},
		{
			name:               "version is set by config",
			conf:               &Conf{Version: "v0.3.0"},
			versionByBuildFlag: "",
			wantVersion:        "v0.3.0",
		},
		{
			name:               "version is not set",
			conf:               &Conf{},
			versionByBuildFlag: "",
			wantVersion:        NoVersion,
		},
		{
			name:               "build flag wins over config",
			conf:               &Conf{Version: "v0.3.0"},
			versionByBuildFlag: "v0.3.1",
			wantVersion:        "v0.3.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetVersion(tt.conf, tt.versionByBuildFlag)
			assert.Equal(t, tt.wantVersion, got)
			assert.Equal(t, tt.wantVersion, Version)
		})
	}
}
