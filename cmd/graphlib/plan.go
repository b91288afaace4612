package main

import (
	"fmt"
	"strconv"

	"github.com/midbel/graphlib"
	"github.com/midbel/graphlib/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *App) newPlanCmd() *cobra.Command {
	var (
		name string
		kind string
	)
	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Print the drawing instructions of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.NewLoader().LoadFile(args[0])
			if err != nil {
				return err
			}
			chart, err := findChart(def.Charts, name)
			if err != nil {
				return err
			}
			plan, errs, err := chart.Build(a.logger)
			if err != nil {
				return err
			}
			a.printPlan(plan, kind)
			for i, msg := range errs.Messages() {
				fmt.Fprintf(a.stdout, "[%d] %s\n", i+1, msg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "chart", "c", "", "name of the chart (default first chart)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only show instructions of the given kind")
	return cmd
}

func findChart(charts []config.Chart, name string) (config.Chart, error) {
	if name == "" && len(charts) > 0 {
		return charts[0], nil
	}
	for _, c := range charts {
		if c.Name == name {
			return c, nil
		}
	}
	return config.Chart{}, fmt.Errorf("%s: chart not found", name)
}

func (a *App) printPlan(plan *graphlib.Plan, kind string) {
	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"#", "kind", "x1", "y1", "x2", "y2", "text", "color"})
	table.SetAutoWrapText(false)
	for i, in := range plan.Instructions() {
		if kind != "" && in.Kind.String() != kind {
			continue
		}
		row := []string{
			strconv.Itoa(i),
			in.Kind.String(),
			formatCoord(in.X1),
			formatCoord(in.Y1),
			formatCoord(in.X2),
			formatCoord(in.Y2),
			in.Text,
			in.Color.String(),
		}
		switch in.Kind {
		case graphlib.KindBackground:
			row[2], row[3], row[4], row[5] = "", "", "", ""
		case graphlib.KindText:
			row[4], row[5] = "", ""
		}
		table.Append(row)
	}
	table.SetFooter([]string{"", "", "", "", "", "", "size", fmt.Sprintf("%dx%d", plan.Width, plan.Height)})
	table.Render()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
