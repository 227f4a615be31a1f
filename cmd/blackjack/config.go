package main

import (
	"fmt"

	"github.com/lox/blackjack/internal/config"
)

// ConfigCmd groups config file commands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective config"`
}

// ConfigInitCmd writes the default configuration
type ConfigInitCmd struct {
	Force bool `kong:"short='f',help='Overwrite an existing file'"`
}

func (c *ConfigInitCmd) Run(globals *Globals) error {
	if err := config.Default().WriteFile(globals.ConfigFile, c.Force); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s\n", globals.ConfigFile)
	return nil
}

// ConfigShowCmd prints the loaded configuration with defaults applied
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fmt.Print(string(cfg.Encode()))
	return nil
}
