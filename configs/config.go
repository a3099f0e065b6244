package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/compose-network/b64file/internal/filesystem"
)

var Values Config

type (
	Config struct {
		Log     Log     `mapstructure:"log"`
		Payload Payload `mapstructure:"payload"`
	}

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	Payload struct {
		Kind string `mapstructure:"kind"`
	}
)

func (c *Config) Validate() error {
	var errs []error

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid", c.Log.Level))
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, errors.New("log.format must be either 'json' or 'text'"))
	}

	if strings.TrimSpace(c.Payload.Kind) == "" {
		errs = append(errs, errors.New("payload.kind is required"))
	} else if _, err := filesystem.ParseKind(c.Payload.Kind); err != nil {
		errs = append(errs, fmt.Errorf("payload.kind: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
