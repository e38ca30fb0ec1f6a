package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/analysis"
	"github.com/sartorproj/goenergy/chart"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/sartorproj/goenergy/report"
	"github.com/spf13/cobra"
)

type forecastFlags struct {
	figureFlags
	horizon int
	maxP    int
	maxQ    int
	jobs    int
	grid    bool
	yaml    string
	xlsx    string
	csv     string
}

func getForecastCmd() *cobra.Command {
	var flags forecastFlags

	forecastCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast a variable for several countries",
		Long: `Select an ARIMA order for every country, fit it and draw the
history together with a dashed forecast of the following years.

The order is chosen by a stepwise search minimizing AIC, starting from
ARIMA(1,d,1) with p and q up to 15. --grid tries every order instead.

Examples:
  goenergy forecast -c Germany -c France -v gdp -o gdp-forecast.png
  goenergy forecast -c Germany -v fossil --report fossil.yaml --xlsx fossil.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runForecast(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	flags.add(forecastCmd)
	forecastCmd.Flags().IntVar(&flags.horizon, "horizon", 0, "number of predicted years")
	forecastCmd.Flags().IntVar(&flags.maxP, "max-p", 0, "largest AR order")
	forecastCmd.Flags().IntVar(&flags.maxQ, "max-q", 0, "largest MA order")
	forecastCmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "concurrent fits with --grid")
	forecastCmd.Flags().BoolVar(&flags.grid, "grid", false, "search every order instead of stepwise")
	forecastCmd.Flags().StringVar(&flags.yaml, "report", "", "write projections to a YAML file")
	forecastCmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "write projections to an Excel workbook")
	forecastCmd.Flags().StringVar(&flags.csv, "csv", "", "write history and projections to a CSV file")

	return forecastCmd
}

func runForecast(cmd *cobra.Command, flags *forecastFlags) error {
	flags.apply(cmd)

	var opts []config.Option
	if cmd.Flags().Changed("horizon") {
		opts = append(opts, config.OptForecastHorizon(flags.horizon))
	}
	if cmd.Flags().Changed("max-p") {
		opts = append(opts, config.OptForecastMaxP(flags.maxP))
	}
	if cmd.Flags().Changed("max-q") {
		opts = append(opts, config.OptForecastMaxQ(flags.maxQ))
	}
	if cmd.Flags().Changed("jobs") {
		opts = append(opts, config.OptForecastJobs(flags.jobs))
	}
	cfg.Update(opts)

	v, ok := dataset.ParseVariable(flags.variable)
	if !ok {
		return dataset.UnknownVariableError(flags.variable)
	}

	view, err := loadView(flags.countries)
	if err != nil {
		return err
	}

	fo := analysis.DefaultOptions()
	fo.Horizon = cfg.Forecast.Horizon
	fo.Search.MaxP = cfg.Forecast.MaxP
	fo.Search.MaxQ = cfg.Forecast.MaxQ
	fo.Search.Jobs = cfg.Forecast.Jobs
	fo.Search.Stepwise = !flags.grid
	fo.Search.Logger = slog.Default()

	res, err := analysis.ForecastContext(cmd.Context(), view, flags.countries, v, fo)
	if err != nil {
		return err
	}

	printProjections(cmd, res.Projections)

	path := flags.path()
	if err = chart.Save(res.Figure, path, cfg.Chart.Width, cfg.Chart.Height); err != nil {
		return err
	}
	gn.Info("Chart saved to <em>%s</em>", path)

	return writeReports(flags, res.Projections)
}

func printProjections(cmd *cobra.Command, prs []analysis.Projection) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "country\tmodel\tAIC\tLB p\tfirst\tlast")
	for _, pr := range prs {
		p := pr.Predicted
		n := p.Len() - 1
		lb := "-"
		if pr.Diagnostics.LjungBox != nil {
			lb = fmt.Sprintf("%.3f", pr.Diagnostics.LjungBox.PValue)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%d: %s\t%d: %s\n",
			pr.Country, pr.Order, pr.Criterion, lb,
			p.Years[0], humanize.Commaf(p.Values[0]),
			p.Years[n], humanize.Commaf(p.Values[n]),
		)
	}
	w.Flush()
}

func writeReports(flags *forecastFlags, prs []analysis.Projection) error {
	if flags.yaml != "" {
		f, err := os.Create(flags.yaml)
		if err != nil {
			return report.ReportError(flags.yaml, err)
		}
		err = report.WriteYAML(f, prs)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = report.ReportError(flags.yaml, cerr)
		}
		if err != nil {
			return err
		}
		gn.Info("Report saved to <em>%s</em>", flags.yaml)
	}

	if flags.csv != "" {
		f, err := os.Create(flags.csv)
		if err != nil {
			return report.ReportError(flags.csv, err)
		}
		err = report.WriteCSV(f, prs)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = report.ReportError(flags.csv, cerr)
		}
		if err != nil {
			return err
		}
		gn.Info("Table saved to <em>%s</em>", flags.csv)
	}

	if flags.xlsx != "" {
		if err := report.WriteXLSX(flags.xlsx, prs); err != nil {
			return err
		}
		gn.Info("Workbook saved to <em>%s</em>", flags.xlsx)
	}
	return nil
}
