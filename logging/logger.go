// Package logging builds the zap logger shared by the world and its systems.
// The terminal owns stdout, so logs go to a file or nowhere.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/trinket/core"
)

// Options selects level, destination and encoding
type Options struct {
	Level       string // debug, info, warn, error
	Path        string // Empty disables logging
	Development bool   // Console encoding with caller info
}

// New builds a logger; an empty path yields a no-op logger
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", opts.Level)
		}
		level = parsed
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: opts.Development,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{opts.Path},
		ErrorOutputPaths: []string{opts.Path},
		DisableCaller:    true,
	}
	if opts.Development {
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.DisableCaller = false
		config.Sampling = nil
	}

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// Entity is the field used for every entity id in log lines
func Entity(key string, e core.Entity) zap.Field {
	return zap.Uint64(key, uint64(e))
}
