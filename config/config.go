/*
Package config loads the settings of page builder tools from YAML files.

A configuration file may set any subset of the keys; missing keys keep
their defaults:

    origin: https://www.example.org
    devOrigin: http://localhost:5000
    apiPrefix: /api/
    historyLimit: 100
    autosaveDelay: 2s
    boxedWidth: 1140
    storeDir: ./pages

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/pagebuilder/builder"
	"github.com/npillmayer/pagebuilder/render"
	"github.com/npillmayer/pagebuilder/style"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of page builder tools.
type Config struct {
	Origin        string        `yaml:"origin"`        // public origin for absolute asset URLs
	DevOrigin     string        `yaml:"devOrigin"`     // asset origin when origin is localhost
	APIPrefix     string        `yaml:"apiPrefix"`     // path prefix of asset URLs to rewrite
	HistoryLimit  int           `yaml:"historyLimit"`  // undo steps, 0 = unbounded
	AutosaveDelay time.Duration `yaml:"autosaveDelay"` // quiescence period before autosave
	BoxedWidth    float64       `yaml:"boxedWidth"`    // content width of boxed sections
	StoreDir      string        `yaml:"storeDir"`      // directory of the file store
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DevOrigin:     style.DefaultDevOrigin,
		APIPrefix:     style.DefaultAPIPrefix,
		HistoryLimit:  builder.DefaultHistoryLimit,
		AutosaveDelay: builder.DefaultAutosaveDelay,
		BoxedWidth:    render.DefaultBoxedWidth,
		StoreDir:      ".",
	}
}

// Load reads a configuration file. An empty path yields the default
// configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads a configuration from YAML. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for illegal values.
func (c *Config) Validate() error {
	switch {
	case c.HistoryLimit < 0:
		return fmt.Errorf("config: historyLimit must not be negative, is %d", c.HistoryLimit)
	case c.AutosaveDelay < 0:
		return fmt.Errorf("config: autosaveDelay must not be negative, is %s", c.AutosaveDelay)
	case c.BoxedWidth < 0:
		return fmt.Errorf("config: boxedWidth must not be negative, is %g", c.BoxedWidth)
	}
	return nil
}

// Lowerer creates a style lowerer from the configuration.
func (c *Config) Lowerer() *style.Lowerer {
	return &style.Lowerer{Origin: c.Origin, DevOrigin: c.DevOrigin, APIPrefix: c.APIPrefix}
}

// ControllerOptions returns the builder options set by the configuration.
func (c *Config) ControllerOptions() []builder.Option {
	return []builder.Option{
		builder.HistoryLimit(c.HistoryLimit),
		builder.AutosaveDelay(c.AutosaveDelay),
	}
}
