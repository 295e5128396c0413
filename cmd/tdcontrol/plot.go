package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/tdcontrol/experiment/trackers"
)

func newPlotCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot file.bin...",
		Short: "Plot saved tracker data as an HTML line chart",
		Long: `Plot reads per-episode data saved by the run command and writes a
line chart with one curve per file, named by the file's base name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curves := make([]trackers.Curve, 0, len(args))
			for _, filename := range args {
				data, err := trackers.LoadData(filename)
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(filepath.Base(filename),
					filepath.Ext(filename))
				curves = append(curves, trackers.Curve{
					Name:   name,
					Values: trackers.MovingAverage(data, v.GetInt("plot-window")),
				})
			}

			out := v.GetString("plot-out")
			if err := plotFile(out, v.GetString("title"), curves...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("plot-out", "curves.html", "File to write the chart to")
	flags.String("title", "Learning curves", "Title of the chart")
	flags.Int("plot-window", 1, "Moving average window of the curves")
	v.BindPFlags(flags)

	return cmd
}

// plotFile writes a chart of the curves to the named file
func plotFile(filename, title string, curves ...trackers.Curve) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("plotFile: %v", err)
	}
	if err := trackers.Plot(f, title, curves...); err != nil {
		f.Close()
		return fmt.Errorf("plotFile: %v", err)
	}
	return f.Close()
}
