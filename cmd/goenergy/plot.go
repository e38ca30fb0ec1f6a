package main

import (
	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/analysis"
	"github.com/sartorproj/goenergy/chart"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/spf13/cobra"
)

// figureFlags are shared by plot and forecast.
type figureFlags struct {
	countries []string
	variable  string
	output    string
	from, to  int
	width     float64
	height    float64
}

func (f *figureFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.countries, "country", "c", nil,
		"country to draw, repeat or separate with commas")
	cmd.Flags().StringVarP(&f.variable, "variable", "v", "gdp",
		"variable: gdp, renewables or fossil")
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"image file, format from extension (default <variable>.png)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "figure width in inches")
	cmd.Flags().Float64Var(&f.height, "height", 0, "figure height in inches")
	addWindowFlags(cmd, &f.from, &f.to)
	_ = cmd.MarkFlagRequired("country")
}

// apply copies the flags that were set into the configuration.
func (f *figureFlags) apply(cmd *cobra.Command) {
	applyWindow(cmd, f.from, f.to)
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
		w, h := cfg.Chart.Width, cfg.Chart.Height
		if cmd.Flags().Changed("width") {
			w = f.width
		}
		if cmd.Flags().Changed("height") {
			h = f.height
		}
		cfg.Update([]config.Option{config.OptChartSize(w, h)})
	}
}

func (f *figureFlags) path() string {
	if f.output != "" {
		return f.output
	}
	return f.variable + ".png"
}

func getPlotCmd() *cobra.Command {
	var flags figureFlags

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw a variable for several countries",
		Long: `Draw one line per country for the chosen variable.

An unknown variable draws nothing and only prints a warning.

Examples:
  goenergy plot -c Germany -c France -v gdp -o gdp.png
  goenergy plot -c Germany,France,Italy -v renewables -o renewables.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPlot(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	flags.add(plotCmd)

	return plotCmd
}

func runPlot(cmd *cobra.Command, flags *figureFlags) error {
	flags.apply(cmd)

	view, err := loadView(flags.countries)
	if err != nil {
		return err
	}

	res, err := analysis.Plot(view, dataset.Variable(flags.variable), flags.countries)
	if err != nil {
		return err
	}
	if res.Outcome == analysis.UnknownVariable {
		gn.Warn("Unknown variable <em>%s</em>, nothing was drawn", flags.variable)
		return nil
	}

	path := flags.path()
	if err = chart.Save(res.Figure, path, cfg.Chart.Width, cfg.Chart.Height); err != nil {
		return err
	}
	gn.Info("Chart saved to <em>%s</em>", path)
	return nil
}
