package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// GetAssetAbsPath resolves fileName in the assets dir next to this package.
func GetAssetAbsPath(fileName string) (string, error) {
	return GetAbsPath(fileName, "assets")
}

func GetAbsPath(fileName, dirName string) (string, error) {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("no caller information")
	}
	path := filepath.Join(filepath.Dir(self), dirName, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "lookup %s", fileName)
	}
	return path, nil
}

func GetAsset(fileName string) (string, error) {
	path, err := GetAssetAbsPath(fileName)
	if err != nil {
		return "", err
	}
	return ReadFile(path)
}

func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}

// IsDirWritable reports InvalidArgument unless dirPath is an existing
// directory a file can be created in.
func IsDirWritable(dirPath string) error {
	info, err := os.Stat(dirPath)
	switch {
	case os.IsNotExist(err):
		return errors.Wrapf(ErrInvalidArgument, "no directory %s", dirPath)
	case err != nil:
		return errors.Wrapf(err, "stat %s", dirPath)
	case !info.IsDir():
		return errors.Wrapf(ErrInvalidArgument, "%s is not a directory", dirPath)
	}

	tmp, err := os.CreateTemp(dirPath, ".writable-*")
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "%s is not writable: %s", dirPath, err)
	}
	name := tmp.Name()
	tmp.Close()
	if err := os.Remove(name); err != nil {
		return errors.Wrapf(err, "remove %s", name)
	}
	return nil
}

// ReadSettingsFile reads a TOML file and logs the absolute path when it is missing.
func ReadSettingsFile(settingsPath string) (string, error) {
	bytes, err := os.ReadFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read settings file/path:%s/reason:%s",
			settingsPath, err))
		if absolutePath, err := filepath.Abs(settingsPath); err != nil {
			zap.L().Error(fmt.Sprintf("failed to get absolute path of %s/reason:%s",
				settingsPath, err))
		} else {
			zap.L().Debug(fmt.Sprintf("absolute path:%s", absolutePath))
		}
		return "", err
	}
	return string(bytes), nil
}
