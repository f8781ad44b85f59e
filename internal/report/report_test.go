package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = []Row{
	{Problem: "maze", Algorithm: "A*", Found: true, Moves: 9, Cost: 9, Expanded: 14, Generated: 15, Elapsed: 2 * time.Millisecond},
	{Problem: "maze", Algorithm: "Breadth-First Search", Found: false, Expanded: 20, Generated: 21},
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	WriteTable(&out, sample)

	text := out.String()
	assert.Contains(t, text, "PROBLEM")
	assert.Contains(t, text, "EXPANDED")
	assert.Contains(t, text, "A*")
	assert.Contains(t, text, "0.002s")
	assert.Contains(t, text, "no solution")
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Write(&out, "yaml", sample))

	var decoded []Row
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	assert.Error(t, Write(&bytes.Buffer{}, "csv", sample))
}

func TestWriteTable_StoppedRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	WriteTable(&out, []Row{{Problem: "slide", Algorithm: "A*", Expanded: 10, Error: "expansion budget exhausted"}})
	assert.Contains(t, out.String(), "stopped")
}
