package applog

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ModuleKey = "module"

	consoleTimeFormat = "2006-01-02 15:04:05.000"
)

type Config struct {
	Level      string
	Console    bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	mu        sync.RWMutex
	appLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	modules   = make(map[string]zerolog.Logger)
	closer    io.Closer
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Init replaces the app logger. Module loggers added before Init are rebuilt
// on top of the new one.
func Init(cfg Config) error {
	lv := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return errors.Wrapf(err, "parse log level %q", cfg.Level)
		}
		lv = parsed
	}

	var (
		writers []io.Writer
		fc      io.Closer
	)

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: consoleTimeFormat})
	}

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, lj)
		fc = lj
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = os.Stdout
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
	}
	closer = fc

	appLogger = zerolog.New(out).Level(lv).With().Timestamp().Logger()
	for name := range modules {
		modules[name] = newModuleLogger(appLogger, name)
	}

	return nil
}

func AppLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return appLogger
}

func AddModuleLogger(name string) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := modules[name]; ok {
		return
	}

	modules[name] = newModuleLogger(appLogger, name)
}

// GetLogger falls back to the app logger for unknown modules.
func GetLogger(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if lg, ok := modules[name]; ok {
		return lg
	}

	return appLogger
}

// Close flushes and releases the rolling file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if closer == nil {
		return nil
	}

	err := closer.Close()
	closer = nil
	return err
}

func newModuleLogger(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str(ModuleKey, name).Logger()
}
