package common

import (
	"fmt"

	"checkout/internal/config"
	"checkout/internal/logging"
)

// Context is what every command of a binary shares
type Context struct {
	BinaryName string
	Config     *config.Config
}

// NewContext loads the configuration for binaryName and applies its log level
func NewContext(binaryName string) (*Context, error) {
	cfg, err := config.NewConfigLoader(binaryName).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	return &Context{
		BinaryName: binaryName,
		Config:     cfg,
	}, nil
}

// GetPrefix returns the prefix printed before command output
func (c *Context) GetPrefix() string {
	return "[" + c.BinaryName + "] "
}
