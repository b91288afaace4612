package main

import (
	"strconv"

	"github.com/midbel/graphlib"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *App) newTicksCmd() *cobra.Command {
	var (
		min    float64
		max    float64
		extent float64
		forced bool
	)
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks computed for a range of values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var base *float64
			if forced {
				base = &min
			}
			interval := graphlib.TickInterval(max, min, forced, extent)
			ticks := graphlib.Ticks(min, max, base, interval)

			table := tablewriter.NewWriter(a.stdout)
			table.SetHeader([]string{"#", "value"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for i, t := range ticks {
				table.Append([]string{strconv.Itoa(i), strconv.FormatFloat(t, 'f', -1, 64)})
			}
			table.SetFooter([]string{"interval", strconv.FormatFloat(interval, 'f', -1, 64)})
			table.Render()
			return nil
		},
	}
	cmd.Flags().Float64Var(&min, "min", 0, "lowest value")
	cmd.Flags().Float64Var(&max, "max", 100, "highest value")
	cmd.Flags().Float64Var(&extent, "extent", graphlib.DefaultHeight, "height in pixels of the plot area")
	cmd.Flags().BoolVar(&forced, "forced", false, "treat min and max as a forced range")
	return cmd
}
