// Package config loads the blackjack HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/lox/blackjack/internal/fileutil"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls dealing
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"` // 0 picks a seed from the clock
}

// UISettings contains user interface settings
type UISettings struct {
	Bell     bool   `hcl:"bell,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
	ShowCues bool   `hcl:"show_cues,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Seed: 0,
		},
		UI: &UISettings{
			Bell:     false,
			NoColor:  false,
			ShowCues: false,
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.UI == nil {
		config.UI = defaults.UI
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = "info"
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = "blackjack.log"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that HCL decoding cannot
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(strings.ToLower(c.UI.LogLevel)); err != nil {
		return fmt.Errorf("invalid ui.log_level %q: %w", c.UI.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.UI.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Encode renders the configuration as HCL
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}

// WriteFile writes the configuration atomically. It refuses to overwrite an
// existing file unless force is set.
func (c *Config) WriteFile(filename string, force bool) error {
	if !force {
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("%s already exists", filename)
		}
	}
	return fileutil.WriteFileAtomic(filename, c.Encode(), 0o644)
}
