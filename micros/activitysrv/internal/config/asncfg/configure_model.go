package asncfg

import (
	"github.com/sweemingdow/sdact/external/econfig"
)

type StaticConfig struct {
	ServerCfg econfig.ServerCfg `yaml:"server"`

	LogCfg econfig.LogCfg `yaml:"log"`
}

func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		ServerCfg: econfig.DefaultServerCfg(),
		LogCfg:    econfig.DefaultLogCfg(),
	}
}
