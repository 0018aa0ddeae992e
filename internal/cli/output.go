package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/logging"
)

// choice is a string flag value restricted to a fixed set.
type choice struct {
	value   string
	choices []string
}

func newChoice(def string, choices ...string) *choice {
	return &choice{value: def, choices: choices}
}

func (c *choice) String() string { return c.value }

func (c *choice) Type() string { return "string" }

func (c *choice) Set(s string) error {
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("invalid value %q (want one of %s)", s, strings.Join(c.choices, "|"))
	}
	c.value = s
	return nil
}

// render writes v in the configured output format; text output is left to
// the command.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// point is a cell in reports.
type point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// loadGrid reads a map file, logging its rows at debug level.
func (a *app) loadGrid(cmd *cobra.Command, path string) (*grid.Grid, error) {
	g, err := grid.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded grid", "file", path, "width", g.Width(), "height", g.Height())
	logging.LogGrid(cmd.Context(), a.log, "grid row", g)
	return g, nil
}
