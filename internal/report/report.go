// Package report renders search outcomes for the command line.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Row is the outcome of one algorithm on one problem.
type Row struct {
	Problem   string        `yaml:"problem"`
	Algorithm string        `yaml:"algorithm"`
	Found     bool          `yaml:"found"`
	Moves     int           `yaml:"moves"`
	Cost      float64       `yaml:"cost"`
	Expanded  int           `yaml:"expanded"`
	Generated int           `yaml:"generated"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Path      []string      `yaml:"path,omitempty"`
	Error     string        `yaml:"error,omitempty"`
}

var header = []string{"PROBLEM", "ALGORITHM", "MOVES", "COST", "EXPANDED", "GENERATED", "TIME"}

// WriteTable renders rows as an aligned table. Unsolved rows show
// "no solution", or "stopped" when the search was cut short, in place of the
// move count.
func WriteTable(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for _, row := range rows {
		moves, cost := "no solution", "-"
		switch {
		case row.Error != "":
			moves = "stopped"
		case row.Found:
			moves = strconv.Itoa(row.Moves)
			cost = strconv.FormatFloat(row.Cost, 'f', -1, 64)
		}
		table.Append([]string{
			row.Problem,
			row.Algorithm,
			moves,
			cost,
			strconv.Itoa(row.Expanded),
			strconv.Itoa(row.Generated),
			fmt.Sprintf("%.3fs", row.Elapsed.Seconds()),
		})
	}
	table.Render()
}

// WriteYAML renders rows as a YAML sequence.
func WriteYAML(w io.Writer, rows []Row) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(rows); err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	return nil
}

// Write dispatches on format: "table" or "yaml".
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case "table":
		WriteTable(w, rows)
		return nil
	case "yaml":
		return WriteYAML(w, rows)
	}
	return errors.Errorf("unknown output format %q", format)
}
