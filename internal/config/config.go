// Package config loads the bestfirst command configuration from defaults, an
// optional YAML file and BESTFIRST_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/maze"
)

// FileName is the configuration file looked up in the home directory.
const FileName = ".bestfirst.yaml"

// EnvPrefix prefixes environment overrides, e.g. BESTFIRST_SEARCH_DEDUP.
const EnvPrefix = "BESTFIRST"

// Config holds all configuration for the command
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Maze    MazeConfig    `mapstructure:"maze" yaml:"maze"`
	Sliding SlidingConfig `mapstructure:"sliding" yaml:"sliding"`
	Dots    DotsConfig    `mapstructure:"dots" yaml:"dots"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SearchConfig selects the algorithms and engine options.
type SearchConfig struct {
	Algorithms    []string      `mapstructure:"algorithms" yaml:"algorithms"`
	Dedup         string        `mapstructure:"dedup" yaml:"dedup"`
	PathStorage   string        `mapstructure:"path_storage" yaml:"path_storage"`
	MaxExpansions int           `mapstructure:"max_expansions" yaml:"max_expansions"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Point is a grid square.
type Point struct {
	X int `mapstructure:"x" yaml:"x"`
	Y int `mapstructure:"y" yaml:"y"`
}

// MazeConfig describes the maze shared by the maze and dots problems.
type MazeConfig struct {
	Rows  []string `mapstructure:"rows" yaml:"rows"`
	Start Point    `mapstructure:"start" yaml:"start"`
	Goal  Point    `mapstructure:"goal" yaml:"goal"`
}

// SlidingConfig controls how the puzzle is scrambled.
type SlidingConfig struct {
	ScrambleMoves int   `mapstructure:"scramble_moves" yaml:"scramble_moves"`
	Seed          int64 `mapstructure:"seed" yaml:"seed"`
}

// DotsConfig lists the dots to collect.
type DotsConfig struct {
	Positions []Point `mapstructure:"positions" yaml:"positions"`
}

// OutputConfig picks the report format.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("search.algorithms", []string{"astar", "ucs", "bfs"})
	v.SetDefault("search.dedup", bestfirst.DedupExact.String())
	v.SetDefault("search.path_storage", bestfirst.PathCopy.String())
	v.SetDefault("search.max_expansions", 0)
	v.SetDefault("search.timeout", "0s")

	v.SetDefault("maze.rows", maze.Classic)
	v.SetDefault("maze.start", map[string]int{"x": maze.ClassicStart.X, "y": maze.ClassicStart.Y})
	v.SetDefault("maze.goal", map[string]int{"x": maze.ClassicGoal.X, "y": maze.ClassicGoal.Y})

	v.SetDefault("sliding.scramble_moves", 40)
	v.SetDefault("sliding.seed", 1)

	v.SetDefault("dots.positions", []map[string]int{
		{"x": 1, "y": 2}, {"x": 6, "y": 1}, {"x": 7, "y": 5}, {"x": 1, "y": 4},
	})

	v.SetDefault("output.format", "table")
}

// DefaultPath returns $HOME/.bestfirst.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate home directory")
	}
	return filepath.Join(home, FileName), nil
}

// Load reads path into v on top of the defaults and environment. An empty
// path falls back to DefaultPath, which may be missing; an explicit path must
// exist.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else if explicit {
		return Config{}, errors.Wrapf(err, "config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log.level"))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		result = multierror.Append(result, errors.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(c.Search.Algorithms) == 0 {
		result = multierror.Append(result, errors.New("search.algorithms must name at least one algorithm"))
	}
	for _, name := range c.Search.Algorithms {
		if _, err := bestfirst.ParseAlgorithm(name); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "search.algorithms"))
		}
	}
	if _, err := bestfirst.ParseDedupMode(c.Search.Dedup); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "search.dedup"))
	}
	if _, err := bestfirst.ParsePathStorage(c.Search.PathStorage); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "search.path_storage"))
	}
	if c.Search.MaxExpansions < 0 {
		result = multierror.Append(result, errors.New("search.max_expansions must not be negative"))
	}
	if c.Search.Timeout < 0 {
		result = multierror.Append(result, errors.New("search.timeout must not be negative"))
	}

	if _, err := maze.Parse(c.Maze.Rows); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "maze.rows"))
	}
	if c.Sliding.ScrambleMoves < 0 {
		result = multierror.Append(result, errors.New("sliding.scramble_moves must not be negative"))
	}
	if c.Output.Format != "table" && c.Output.Format != "yaml" {
		result = multierror.Append(result, errors.Errorf("output.format must be table or yaml, got %q", c.Output.Format))
	}

	return result.ErrorOrNil()
}

// Options translates the search section into engine options.
func (c SearchConfig) Options() ([]bestfirst.Option, error) {
	dedup, err := bestfirst.ParseDedupMode(c.Dedup)
	if err != nil {
		return nil, err
	}
	storage, err := bestfirst.ParsePathStorage(c.PathStorage)
	if err != nil {
		return nil, err
	}
	return []bestfirst.Option{
		bestfirst.WithDedup(dedup),
		bestfirst.WithPathStorage(storage),
		bestfirst.WithMaxExpansions(c.MaxExpansions),
	}, nil
}

// ParsedAlgorithms returns the configured algorithms in order.
func (c SearchConfig) ParsedAlgorithms() ([]bestfirst.Algorithm, error) {
	algorithms := make([]bestfirst.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		algorithm, err := bestfirst.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algorithm)
	}
	return algorithms, nil
}

// YAML renders the effective configuration.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return out, nil
}
