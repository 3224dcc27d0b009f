package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMargin is how many terminal rows stay free beneath the
	// canvas so the shell prompt has somewhere to land.
	DefaultMargin = 1
	DefaultSymbol = "*"
	DefaultTheme  = "mono"
)

// Config resolves the canvas geometry and drawing defaults. Width and
// Height of 0 mean "autodetect from the terminal".
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin int    `yaml:"margin"`
	Symbol string `yaml:"symbol"`
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Margin: DefaultMargin,
		Symbol: DefaultSymbol,
		Theme:  DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects geometry the canvas cannot work with.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative extent %dx%d", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return fmt.Errorf("config: negative margin %d", c.Margin)
	}
	if n := len([]rune(c.Symbol)); n != 1 {
		return fmt.Errorf("config: symbol must be a single character, got %q", c.Symbol)
	}
	return nil
}

// SymbolRune returns the configured draw symbol. Call Validate first.
func (c *Config) SymbolRune() rune {
	return []rune(c.Symbol)[0]
}

// Resolve fills zero width/height from the detected terminal size,
// keeping Margin rows below the canvas.
func (c *Config) Resolve(termWidth, termHeight int) (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = termWidth
	}
	if h == 0 {
		h = termHeight - c.Margin
	}
	return w, h
}
