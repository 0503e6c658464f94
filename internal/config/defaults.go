package config

const (
	// DefaultWorkDir is the directory run-lists are searched in
	DefaultWorkDir = "."
	// DefaultRunListFile is the file name of a run-list
	DefaultRunListFile = "RUNLIST"
	// DefaultCommentPrefix marks comment lines in a run-list
	DefaultCommentPrefix = "#"
	// DefaultSettingsFile is the optional project settings file
	DefaultSettingsFile = "settings.env"
	// DefaultLogDir is the project directory log files are written to
	DefaultLogDir = "logs"
	// DefaultLogFile is the log file name inside the log directory
	DefaultLogFile = "testvibe.log"
	// DefaultDebug is the log level used when no settings file says otherwise
	DefaultDebug = true
)

// Settings keys read from the settings file
const (
	SettingProjectName   = "PROJECT_NAME"
	SettingLogLevelDebug = "LOG_LEVEL_DEBUG"
	SettingLogDir        = "LOG_DIR"
)
