package core

type Conf struct {
	Version            string `long:"version" description:"version of the adapter" env:"QIQB_ADAPTER_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"QIQB_ADAPTER_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"QIQB_ADAPTER_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"QIQB_ADAPTER_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"QIQB_ADAPTER_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QIQB_ADAPTER_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QIQB_ADAPTER_LOG_ROTATION_MAX_DAYS"`
	MaxQubits          int    `long:"max-qubits" description:"qubit capacity of a session, overridden by the qubit_manager setting" default:"50" env:"QIQB_ADAPTER_MAX_QUBITS"`
	OutputDir          string `long:"output-dir" description:"directory of IR files written by the file backend" default:"./shares/ir" env:"QIQB_ADAPTER_OUTPUT_DIR"`
	SettingPath        string `long:"setting-path" description:"setting file path" default:"./setting/setting.toml" env:"QIQB_ADAPTER_SETTING_PATH"`
}
