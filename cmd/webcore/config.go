package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. Zero values mean "use the default".
type Config struct {
	CSS    []string `yaml:"css"`
	Engine string   `yaml:"engine"`
	Format string   `yaml:"format"`
	Trace  string   `yaml:"trace"`
}

func defaultConfig() Config {
	return Config{
		Engine: "native",
		Format: "tree",
		Trace:  "error",
	}
}

// loadConfig reads a YAML configuration file. Settings missing from the file
// keep their values from base.
func loadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrap(err, "reading config")
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, errors.Wrapf(err, "parsing config %s", path)
	}
	return base.merge(file), nil
}

// merge overlays the non-zero settings of other onto c.
func (c Config) merge(other Config) Config {
	if len(other.CSS) > 0 {
		c.CSS = other.CSS
	}
	if other.Engine != "" {
		c.Engine = other.Engine
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Trace != "" {
		c.Trace = other.Trace
	}
	return c
}
