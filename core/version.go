package core

import (
	"runtime/debug"

	"go.uber.org/zap"
)

var Version string

const NoVersion = "no_version_info"

// SetVersion prefers the build flag, then the configuration, then the
// module version embedded by the go tool.
func SetVersion(c *Conf, versionByBuildFlag string) string {
	switch {
	case versionByBuildFlag != "":
		Version = versionByBuildFlag
	case c.Version != "":
		Version = c.Version
	default:
		Version = moduleVersion()
	}
	zap.L().Info("adapter version", zap.String("version", Version))
	return Version
}

func moduleVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return NoVersion
	}
	return bi.Main.Version
}
