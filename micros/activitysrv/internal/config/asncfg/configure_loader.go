package asncfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sweemingdow/sdact/external/econfig"
	"gopkg.in/yaml.v3"
)

// LoadStaticConfig reads the yaml file at path over the defaults. An empty
// path means defaults only.
func LoadStaticConfig(path string) (StaticConfig, error) {
	if path == "" {
		return DefaultStaticConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return StaticConfig{}, fmt.Errorf("read static config %s: %w", path, err)
	}

	cfg, err := ParseStaticConfig(data)
	if err != nil {
		return StaticConfig{}, fmt.Errorf("static config %s: %w", path, err)
	}

	return cfg, nil
}

func ParseStaticConfig(data []byte) (StaticConfig, error) {
	cfg := DefaultStaticConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return StaticConfig{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return StaticConfig{}, err
	}

	return cfg, nil
}

func (sc *StaticConfig) validate() error {
	srv := &sc.ServerCfg
	if srv.HttpAddr == "" {
		return errors.New("server.http-addr is required")
	}

	if srv.HttpAddr == srv.RpcAddr {
		return fmt.Errorf("server.rpc-addr must differ from server.http-addr %s", srv.HttpAddr)
	}

	if srv.BodyLimit <= 0 {
		srv.BodyLimit = econfig.DefaultBodyLimit
	}

	if srv.ShutdownTimeout <= 0 {
		srv.ShutdownTimeout = econfig.DefaultShutdownTimeout
	}

	return nil
}
