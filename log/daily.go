package log

import (
	"math"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
)

// keepAll is a rotation count no output dir reaches, so nothing is purged.
const keepAll = math.MaxInt32

// NewDailyFile appends to <prefix>-YYYY-MM-DD.<ext> in dirPath, switching
// files when the date changes. Old files are kept.
func NewDailyFile(dirPath, prefix, ext string, opts ...rotate.Option) (*rotate.RotateLogs, error) {
	if err := common.IsDirWritable(dirPath); err != nil {
		return nil, errors.Wrapf(err, "output dir %s", dirPath)
	}
	options := append([]rotate.Option{
		rotate.WithRotationCount(keepAll),
		rotate.WithRotationTime(time.Hour),
	}, opts...)
	return rotate.New(filepath.Join(dirPath, prefix+"-%Y-%m-%d."+ext), options...)
}
