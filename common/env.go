// Package common provides shared constants used across the histdl
// store, panel and command layers.
package common

// Environment variable names for configuration.
const (
	// ConfigDirEnv is the environment variable for a custom config directory.
	ConfigDirEnv = "HISTDL_CONFIG_DIR"

	// HistoryFileEnv is the environment variable for a custom history file path.
	HistoryFileEnv = "HISTDL_HISTORY_FILE"

	// LangEnv is the environment variable for the display language.
	LangEnv = "HISTDL_LANG"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "HISTDL_DEBUG"
)
