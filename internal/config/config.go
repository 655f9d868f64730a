// Package config loads the histdl configuration from config.json in
// the histdl config directory, with defaults for every key and
// environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/histdl/histdl/common"
	"github.com/histdl/histdl/pkg/histlib"
)

const (
	// DefaultLanguage is the display language used when none is configured.
	DefaultLanguage = "en"

	// DefaultExportName is the file name offered for history exports.
	DefaultExportName = "download_history.txt"
)

// Config is the struct that holds the configuration of the application.
type Config struct {
	History HistoryConfig `json:"history"`
	App     AppConfig     `json:"app"`
	Export  ExportConfig  `json:"export"`
}

type HistoryConfig struct {
	File     string `json:"file"`
	PageSize int    `json:"pageSize"`
}

type AppConfig struct {
	Language string `json:"language"`
	Debug    bool   `json:"debug"`
}

type ExportConfig struct {
	DefaultName string `json:"defaultName"`
}

// Dir returns the histdl configuration directory, creating it if
// necessary. HISTDL_CONFIG_DIR overrides the platform default
// (os.UserConfigDir()/histdl).
func Dir() (string, error) {
	dir := os.Getenv(common.ConfigDirEnv)
	if dir == "" {
		cdr, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(cdr, "histdl")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return abs, nil
}

// Load reads config.json from dir. A missing file yields the defaults;
// a malformed one is an error. Environment overrides apply last.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config") // File name without extension
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	v.SetDefault("history.file", filepath.Join(dir, histlib.DefaultFileName))
	v.SetDefault("history.pageSize", histlib.DefaultPageSize)
	v.SetDefault("app.language", DefaultLanguage)
	v.SetDefault("app.debug", false)
	v.SetDefault("export.defaultName", DefaultExportName)

	// Try to read configuration file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Override from environment variables if available
	if envFile := os.Getenv(common.HistoryFileEnv); envFile != "" {
		config.History.File = envFile
	}
	if envLang := os.Getenv(common.LangEnv); envLang != "" {
		config.App.Language = envLang
	}
	if os.Getenv(common.DebugEnv) != "" {
		config.App.Debug = true
	}
	return &config, nil
}
