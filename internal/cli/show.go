package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type showReport struct {
	File   string   `json:"file" yaml:"file"`
	Width  int      `json:"width" yaml:"width"`
	Height int      `json:"height" yaml:"height"`
	Free   int      `json:"free" yaml:"free"`
	Walls  int      `json:"walls" yaml:"walls"`
	Start  *point   `json:"start,omitempty" yaml:"start,omitempty"`
	Finish *point   `json:"finish,omitempty" yaml:"finish,omitempty"`
	Lines  []string `json:"lines" yaml:"lines"`
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a map with its size and markers",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(cmd, args[0])
	if err != nil {
		return err
	}
	gc := a.cfg.Grid

	report := showReport{
		File:   args[0],
		Width:  g.Width(),
		Height: g.Height(),
		Free:   g.Count(gc.Free[0]),
		Walls:  g.Count(gc.Wall[0]),
		Lines:  g.Lines(),
	}
	if p, ok := g.FindFirst(gc.Start[0]); ok {
		report.Start = &point{X: p.X, Y: p.Y}
	}
	if p, ok := g.FindFirst(gc.Finish[0]); ok {
		report.Finish = &point{X: p.X, Y: p.Y}
	}

	return a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
		for _, line := range report.Lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintf(w, "%dx%d free: %d walls: %d", report.Width, report.Height, report.Free, report.Walls)
		if report.Start != nil {
			fmt.Fprintf(w, " start: %v", *report.Start)
		}
		if report.Finish != nil {
			fmt.Fprintf(w, " finish: %v", *report.Finish)
		}
		_, err := fmt.Fprintln(w)
		return err
	})
}
