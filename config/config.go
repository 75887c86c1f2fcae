// Package config loads the settings of the reclist tools from a YAML
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/erc"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

// Config holds all reclist configuration.
type Config struct {
	// DataDir is where record files live when no explicit path
	// is given.
	DataDir string `yaml:"data_dir"`

	// Topology is the in-memory topology of loaded lists.
	Topology dt.Topology `yaml:"topology"`

	// SaveFormat frames record files: counted or stream.
	SaveFormat recfile.Format `yaml:"save_format"`

	// Descending is the default sort direction.
	Descending bool `yaml:"descending"`

	// MaxRecords is the node budget of each list; 0 is unbounded.
	MaxRecords int `yaml:"max_records"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir:    "data",
		Topology:   dt.Doubly,
		SaveFormat: recfile.Counted,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// yields the defaults. Relative data directories are resolved against
// the directory holding the file.
func Load(path string) (Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return conf, nil
	case err != nil:
		return conf, fmt.Errorf("read config %s: %w: %w", path, ers.ErrIO, err)
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w: %w", path, ers.ErrMalformedConfiguration, err)
	}

	if conf.DataDir != "" && !filepath.IsAbs(conf.DataDir) {
		conf.DataDir = filepath.Join(filepath.Dir(path), conf.DataDir)
	}

	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}

	return conf, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	ec := &erc.Collector{}
	ec.When(c.DataDir == "", errors.New("data_dir is empty"))
	ec.When(!c.Topology.Valid(), fmt.Errorf("unknown topology %s", c.Topology))
	ec.When(c.SaveFormat > recfile.Stream, fmt.Errorf("unknown save_format %s", c.SaveFormat))
	ec.When(c.MaxRecords < 0, fmt.Errorf("max_records %d is negative", c.MaxRecords))

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		ec.Add(fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	if err := ec.Resolve(); err != nil {
		return fmt.Errorf("%w: %w", ers.ErrMalformedConfiguration, err)
	}
	return nil
}
