package session

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
)

// Target is the execution backend named by "<Platform>:<Device>", where the
// device is optional, e.g. "qcs:Aspen-4-4Q-A" or "tnqvm".
type Target struct {
	Platform string
	Device   string
}

func ParseBackendName(name string) (Target, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Target{}, errors.Wrap(common.ErrInvalidArgument, "empty backend name")
	}
	platform, device, _ := strings.Cut(name, ":")
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return Target{}, errors.Wrapf(common.ErrInvalidArgument, "no platform in backend name:%q", name)
	}
	return Target{
		Platform: platform,
		Device:   strings.TrimSpace(device),
	}, nil
}

func (t Target) String() string {
	if t.Device == "" {
		return t.Platform
	}
	return t.Platform + ":" + t.Device
}
