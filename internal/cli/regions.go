package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/grid"
)

type regionReport struct {
	Value     string `json:"value" yaml:"value"`
	Seed      point  `json:"seed" yaml:"seed"`
	Area      int    `json:"area" yaml:"area"`
	Perimeter int    `json:"perimeter" yaml:"perimeter"`
	Sides     int    `json:"sides" yaml:"sides"`
	Price     int    `json:"price" yaml:"price"`
	BulkPrice int    `json:"bulk_price" yaml:"bulk_price"`
}

type regionsReport struct {
	File      string         `json:"file" yaml:"file"`
	Regions   []regionReport `json:"regions" yaml:"regions"`
	Area      int            `json:"area" yaml:"area"`
	Price     int            `json:"price" yaml:"price"`
	BulkPrice int            `json:"bulk_price" yaml:"bulk_price"`
}

func (a *app) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "regions FILE",
		Aliases: []string{"r"},
		Short:   "Price every connected region of a map",
		Long: `Flood-fill every orthogonally connected region of equal cells and report
its area, perimeter and number of sides. The price of a region is area ×
perimeter, the bulk price is area × sides.

Examples:
  gridkit regions garden.txt
  gridkit regions garden.txt -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: a.runRegions,
	}
}

func (a *app) runRegions(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(cmd, args[0])
	if err != nil {
		return err
	}

	regions := g.Regions()
	total, price, bulk := grid.Totals(regions)
	a.log.Info("regions measured", "file", args[0], "regions", len(regions), "price", price, "bulk_price", bulk)

	report := regionsReport{
		File:      args[0],
		Regions:   make([]regionReport, len(regions)),
		Area:      total.Area,
		Price:     price,
		BulkPrice: bulk,
	}
	for i, r := range regions {
		report.Regions[i] = regionReport{
			Value:     string(r.Value),
			Seed:      point{X: r.Seed.X, Y: r.Seed.Y},
			Area:      r.Shape.Area,
			Perimeter: r.Shape.Perimeter,
			Sides:     r.Shape.Corners,
			Price:     r.Shape.Price(),
			BulkPrice: r.Shape.BulkPrice(),
		}
	}

	return a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "VALUE\tSEED\tAREA\tPERIMETER\tSIDES\tPRICE\tBULK")
		for _, r := range report.Regions {
			fmt.Fprintf(tw, "%s\t%v\t%d\t%d\t%d\t%d\t%d\n",
				r.Value, r.Seed, r.Area, r.Perimeter, r.Sides, r.Price, r.BulkPrice)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "regions: %d area: %d price: %d bulk price: %d\n",
			len(report.Regions), report.Area, report.Price, report.BulkPrice)
		return err
	})
}
