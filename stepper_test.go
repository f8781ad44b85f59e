package bestfirst

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_WalksChain(t *testing.T) {
	t.Parallel()

	for _, storage := range []PathStorage{PathCopy, PathTrail} {
		t.Run(storage.String(), func(t *testing.T) {
			graph := chainGraph(4)
			stepper := NewStepper(context.Background(), 0, graph.successors, goalIs(3), nil, ZeroHeuristic[int], WithPathStorage(storage))

			var snapshots []StepSnapshot[int, edge]
			for !stepper.Done() {
				snapshot, err := stepper.Step()
				require.NoError(t, err)
				snapshots = append(snapshots, snapshot)
			}

			require.Len(t, snapshots, 4)
			for i, snapshot := range snapshots {
				assert.Equal(t, i, snapshot.Current)
				assert.Len(t, snapshot.Path, i)
				assert.Equal(t, i+1, snapshot.StepIndex)
				assert.Equal(t, float64(i), snapshot.Priority)
			}

			// Interior nodes admit their forward neighbour and filter the way back.
			assert.Equal(t, 1, snapshots[1].Admitted)
			assert.Equal(t, 1, snapshots[1].Filtered)

			last := snapshots[3]
			assert.True(t, last.Done)
			assert.True(t, last.Found)
			assert.Equal(t, 3, last.PastSize)

			result := stepper.Result()
			require.True(t, result.Found)
			assert.Equal(t, last.Path, result.Path)

			// Stepping a finished search is harmless.
			again, err := stepper.Step()
			require.NoError(t, err)
			assert.True(t, again.Done)
			assert.Equal(t, 4, again.StepIndex)
		})
	}
}

func TestStepper_SkipsStaleEntries(t *testing.T) {
	t.Parallel()

	// Diamond: 0 -> 1, 0 -> 2, both -> 3, 3 -> 4. Without admission
	// filtering, 3 is queued twice and its second copy is stale.
	graph := weightedGraph{}
	graph.addEdge(0, 1, 1)
	graph.addEdge(0, 2, 1)
	graph.addEdge(1, 3, 1)
	graph.addEdge(2, 3, 1)
	graph.addEdge(3, 4, 1)

	stepper := NewStepper(context.Background(), 0, graph.successors, goalIs(4), nil, nil, WithDedup(DedupNone))
	staleSeen := 0
	for !stepper.Done() {
		snapshot, err := stepper.Step()
		require.NoError(t, err)
		staleSeen += snapshot.Stale
	}

	assert.Equal(t, 1, staleSeen)
	result := stepper.Result()
	require.True(t, result.Found)
	assert.Equal(t, 5, result.ExpandedNodes)
	assert.Equal(t, 6, result.GeneratedNodes)
	assert.Equal(t, []int{1, 3, 4}, []int{result.Path[0].To, result.Path[1].To, result.Path[2].To})
}

func TestStepper_Exhausts(t *testing.T) {
	t.Parallel()

	graph := chainGraph(3)
	stepper := NewStepper(context.Background(), 0, graph.successors, goalIs(9), nil, nil)

	var last StepSnapshot[int, edge]
	for !stepper.Done() {
		snapshot, err := stepper.Step()
		require.NoError(t, err)
		last = snapshot
	}

	assert.True(t, last.Done)
	assert.False(t, last.Found)
	assert.Zero(t, last.FringeSize)
	assert.False(t, stepper.Result().Found)
}

func TestStepper_FailureIsSticky(t *testing.T) {
	t.Parallel()

	contextObject, cancel := context.WithCancel(context.Background())
	stepper := NewStepper(contextObject, 0, chainGraph(5).successors, goalIs(4), nil, nil)

	_, err := stepper.Step()
	require.NoError(t, err)

	cancel()
	_, err = stepper.Step()
	require.Error(t, err)
	assert.True(t, stepper.Done())

	_, again := stepper.Step()
	assert.Equal(t, err, again)
}

func TestStepper_BudgetLeavesFringeIntact(t *testing.T) {
	t.Parallel()

	stepper := NewStepper(context.Background(), 0, chainGraph(3).successors, goalIs(9), nil, nil, WithMaxExpansions(2))

	for i := 0; i < 2; i++ {
		_, err := stepper.Step()
		require.NoError(t, err)
	}

	snapshot, err := stepper.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBudgetExhausted))
	assert.True(t, snapshot.Done)
	assert.Equal(t, 1, snapshot.FringeSize)
	assert.Equal(t, 2, stepper.Result().ExpandedNodes)
}
