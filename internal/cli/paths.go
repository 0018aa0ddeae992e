package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/internal/logging"
	"github.com/katalvlaran/gridkit/pathfind"
	"github.com/katalvlaran/gridkit/position"
)

// drawMark is written over every cell of a drawn route.
const drawMark = 'O'

type pathsReport struct {
	File    string   `json:"file" yaml:"file"`
	Mode    string   `json:"mode" yaml:"mode"`
	Start   point    `json:"start" yaml:"start"`
	Finish  point    `json:"finish" yaml:"finish"`
	Found   bool     `json:"found" yaml:"found"`
	Best    int      `json:"best" yaml:"best"`
	Paths   int      `json:"paths" yaml:"paths"`
	Scores  []int    `json:"scores" yaml:"scores"`
	Tiles   int      `json:"tiles" yaml:"tiles"`
	Rounds  int      `json:"rounds" yaml:"rounds"`
	Spawned int      `json:"spawned" yaml:"spawned"`
	Drawn   []string `json:"drawn,omitempty" yaml:"drawn,omitempty"`
}

func (a *app) pathsCommand() *cobra.Command {
	var draw bool
	cmd := &cobra.Command{
		Use:     "paths FILE",
		Aliases: []string{"p"},
		Short:   "Search routes from the start marker to the finish marker",
		Long: `Run a branching search that always faces forward and may turn right or left
while stepping. Modes:

  length     shortest route length only
  shortest   shortest routes with their histories
  all        cheapest route by steps + turn-penalty × turns
  bounded    every route within --slack of the cheapest, optionally capped
             by --max-cost

Examples:
  gridkit paths maze.txt
  gridkit paths maze.txt --mode length
  gridkit paths maze.txt --max-cost 7036 --draw -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPaths(cmd, args[0], draw)
		},
	}

	f := cmd.Flags()
	f.VarP(newChoice(pathfind.ModeBoundedPaths.String(),
		pathfind.ModeShortestLength.String(), pathfind.ModeShortestPaths.String(),
		pathfind.ModeAllPaths.String(), pathfind.ModeBoundedPaths.String()),
		"mode", "m", "search mode (length|shortest|all|bounded)")
	f.Int("turn-penalty", pathfind.DefaultTurnPenalty, "cost of one change of facing")
	f.Int("slack", pathfind.DefaultSlack, "pruning slack of the bounded mode")
	f.Int("max-cost", 0, "prune routes costing more (0 = no ceiling)")
	f.String("facing", ">", "start facing (^ > v <)")
	f.BoolVarP(&draw, "draw", "d", false, "print the map with every reported route drawn")
	bindFlags(a.v, f, map[string]string{
		"search.mode":         "mode",
		"search.turn_penalty": "turn-penalty",
		"search.slack":        "slack",
		"search.max_cost":     "max-cost",
		"grid.facing":         "facing",
	})
	return cmd
}

func (a *app) runPaths(cmd *cobra.Command, path string, draw bool) error {
	g, err := a.loadGrid(cmd, path)
	if err != nil {
		return err
	}
	gc := a.cfg.Grid
	start, ok := g.FindFirst(gc.Start[0])
	if !ok {
		return fmt.Errorf("%w: start %q in %s", ErrMarkerNotFound, gc.Start, path)
	}
	finish, ok := g.FindFirst(gc.Finish[0])
	if !ok {
		return fmt.Errorf("%w: finish %q in %s", ErrMarkerNotFound, gc.Finish, path)
	}
	free := gc.Free[0]
	g.SetPosition(start, free)
	g.SetPosition(finish, free)

	ctx := cmd.Context()
	mode := a.cfg.Search.SearchMode()
	opts := append(a.cfg.Search.Options(),
		pathfind.WithContext(ctx),
		pathfind.WithOnRound(logging.RoundLogger(ctx, a.log)),
	)
	from := position.New(start.X, start.Y, gc.StartDirection())

	a.log.Info("search started", "file", path, "mode", mode, "start", start.Key(), "finish", finish.Key())
	res, err := pathfind.Search(g, from, finish.Key(), free, mode, opts...)
	if err != nil {
		return fmt.Errorf("search %s: %w", path, err)
	}
	a.log.Info("search finished", "found", res.Found(), "best", res.Best, "paths", len(res.Finished),
		"rounds", res.Rounds, "spawned", res.Spawned)

	report := pathsReport{
		File:    path,
		Mode:    mode.String(),
		Start:   point{X: start.X, Y: start.Y},
		Finish:  point{X: finish.X, Y: finish.Y},
		Found:   res.Found(),
		Best:    res.Best,
		Paths:   len(res.Finished),
		Scores:  res.Scores,
		Tiles:   res.Tiles(),
		Rounds:  res.Rounds,
		Spawned: res.Spawned,
	}
	if draw {
		drawn := g.Clone()
		res.Draw(drawn, drawMark)
		report.Drawn = drawn.Lines()
	}

	return a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
		for _, line := range report.Drawn {
			fmt.Fprintln(w, line)
		}
		if !report.Found {
			_, err := fmt.Fprintf(w, "mode: %s no route from %v to %v (rounds: %d)\n",
				report.Mode, report.Start, report.Finish, report.Rounds)
			return err
		}
		_, err := fmt.Fprintf(w, "mode: %s best: %d paths: %d tiles: %d rounds: %d\n",
			report.Mode, report.Best, report.Paths, report.Tiles, report.Rounds)
		return err
	})
}
