package runner

import (
	"context"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/config"
)

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	return cfg
}

func TestRun_ClassicMaze(t *testing.T) {
	cfg := defaultConfig(t)
	logger, hook := logtest.NewNullLogger()

	rows, err := New(cfg, logger).Run(context.Background(), Maze)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.Equal(t, Maze, row.Problem)
		assert.True(t, row.Found, row.Algorithm)
		assert.Equal(t, 9, row.Moves, row.Algorithm)
		assert.Len(t, row.Path, 9)
		assert.Empty(t, row.Error)
	}
	assert.Equal(t, "A*", rows[0].Algorithm)
	assert.Equal(t, "Breadth-First Search", rows[2].Algorithm)

	solved := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "solved" {
			solved++
			assert.Equal(t, Maze, entry.Data["problem"])
		}
	}
	assert.Equal(t, 3, solved)
}

func TestRun_DotsAndSliding(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Sliding.ScrambleMoves = 10
	cfg.Search.Algorithms = []string{"astar", "bfs"}
	logger, _ := logtest.NewNullLogger()
	r := New(cfg, logger)

	for _, name := range []string{Dots, Sliding} {
		rows, err := r.Run(context.Background(), name)
		require.NoError(t, err, name)
		require.Len(t, rows, 2)
		assert.True(t, rows[0].Found, name)
		assert.Equal(t, rows[1].Moves, rows[0].Moves, name)
	}
}

func TestRun_BudgetIsReportedNotFatal(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Search.MaxExpansions = 2
	cfg.Search.Algorithms = []string{"bfs"}
	logger, hook := logtest.NewNullLogger()

	rows, err := New(cfg, logger).Run(context.Background(), Maze)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Found)
	assert.Contains(t, rows[0].Error, "budget")
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRun_UnknownProblem(t *testing.T) {
	cfg := defaultConfig(t)
	logger, _ := logtest.NewNullLogger()

	_, err := New(cfg, logger).Run(context.Background(), "hanoi")
	assert.Error(t, err)
}

func TestRun_BadMazeEndpoints(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Maze.Goal = config.Point{X: 0, Y: 0}
	logger, _ := logtest.NewNullLogger()

	_, err := New(cfg, logger).Run(context.Background(), Maze)
	assert.Error(t, err)
}

func TestTraceMaze(t *testing.T) {
	cfg := defaultConfig(t)
	logger, _ := logtest.NewNullLogger()

	var steps []TraceStep
	err := New(cfg, logger).TraceMaze(context.Background(), bestfirst.BreadthFirst, func(step TraceStep) error {
		steps = append(steps, step)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	first, last := steps[0], steps[len(steps)-1]
	assert.Equal(t, "<1,1>", first.Current)
	assert.Equal(t, 1, first.Admitted)
	assert.True(t, last.Found)
	assert.Equal(t, "<1,4>", last.Current)
	assert.Len(t, last.Path, 9)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Step)
	}
}
