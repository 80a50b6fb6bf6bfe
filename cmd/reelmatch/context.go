package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"reelmatch/internal/config"
	"reelmatch/internal/logging"
)

// commandContext carries lazily-loaded configuration and logging shared by
// every subcommand.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	cfg *config.Config
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// logger builds the command logger. Verbose runs log at debug and carry a
// run_id so output from one invocation can be grepped out of shared streams.
func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.verbose() {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	if c.verbose() {
		logger = logger.With(logging.String("run_id", uuid.NewString()))
	}
	return logger, nil
}
