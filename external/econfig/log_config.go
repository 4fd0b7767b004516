package econfig

import "github.com/sweemingdow/sdact/pkg/applog"

type LogCfg struct {
	Level      string `yaml:"level"`
	Console    bool   `yaml:"console"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

func DefaultLogCfg() LogCfg {
	return LogCfg{
		Level:      "info",
		Console:    true,
		MaxSizeMB:  100,
		MaxBackups: 7,
		MaxAgeDays: 30,
	}
}

func LogConfigConvert(cfg LogCfg) applog.Config {
	return applog.Config{
		Level:      cfg.Level,
		Console:    cfg.Console,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
	}
}
