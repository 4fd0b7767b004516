package econfig

import "time"

const (
	DefaultHttpAddr        = ":5004"
	DefaultBodyLimit       = 4 * 1024 * 1024
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 5 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

type ServerCfg struct {
	HttpAddr string `yaml:"http-addr"`
	// empty disables the rpc server
	RpcAddr         string        `yaml:"rpc-addr"`
	ReadTimeout     time.Duration `yaml:"read-timeout"`
	WriteTimeout    time.Duration `yaml:"write-timeout"`
	IdleTimeout     time.Duration `yaml:"idle-timeout"`
	BodyLimit       int           `yaml:"body-limit"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout"`
}

func DefaultServerCfg() ServerCfg {
	return ServerCfg{
		HttpAddr:        DefaultHttpAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		BodyLimit:       DefaultBodyLimit,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

func (sc ServerCfg) RpcEnabled() bool {
	return sc.RpcAddr != ""
}
