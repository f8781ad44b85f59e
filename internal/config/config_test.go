package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/maze"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bestfirst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"astar", "ucs", "bfs"}, cfg.Search.Algorithms)
	assert.Equal(t, "exact", cfg.Search.Dedup)
	assert.Equal(t, "copy", cfg.Search.PathStorage)
	assert.Zero(t, cfg.Search.Timeout)
	assert.Equal(t, maze.Classic, cfg.Maze.Rows)
	assert.Equal(t, Point{X: 1, Y: 1}, cfg.Maze.Start)
	assert.Equal(t, Point{X: 1, Y: 4}, cfg.Maze.Goal)
	assert.Len(t, cfg.Dots.Positions, 4)
	assert.Equal(t, 40, cfg.Sliding.ScrambleMoves)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
search:
  algorithms: [bfs]
  dedup: window
  path_storage: trail
  max_expansions: 500
  timeout: 2s
maze:
  rows:
    - "#####"
    - "#   #"
    - "#####"
  start: {x: 1, y: 1}
  goal: {x: 3, y: 1}
`)
	t.Setenv("BESTFIRST_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"bfs"}, cfg.Search.Algorithms)
	assert.Equal(t, "window", cfg.Search.Dedup)
	assert.Equal(t, "trail", cfg.Search.PathStorage)
	assert.Equal(t, 500, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, Point{X: 3, Y: 1}, cfg.Maze.Goal)
	assert.Len(t, cfg.Maze.Rows, 3)
	assert.Equal(t, "yaml", cfg.Output.Format)

	algorithms, err := cfg.Search.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []bestfirst.Algorithm{bestfirst.BreadthFirst}, algorithms)

	options, err := cfg.Search.Options()
	require.NoError(t, err)
	assert.Len(t, options, 3)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_CollectsEveryValidationError(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
search:
  algorithms: [dfs]
  dedup: bloom
output:
  format: xml
`)

	_, err := Load(viper.New(), path)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "search.algorithms")
	assert.Contains(t, err.Error(), "search.dedup")
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidate_RejectsBadMazeAndNegatives(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Search:  SearchConfig{Algorithms: []string{"astar"}, Dedup: "exact", PathStorage: "copy", MaxExpansions: -1},
		Maze:    MazeConfig{Rows: []string{"###", "#"}},
		Sliding: SlidingConfig{ScrambleMoves: -3},
		Output:  OutputConfig{Format: "table"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_expansions")
	assert.Contains(t, err.Error(), "maze.rows")
	assert.Contains(t, err.Error(), "sliding.scramble_moves")
}

func TestYAML_RoundTrips(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "path_storage: copy")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, cfg, decoded)
}
