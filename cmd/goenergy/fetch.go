package main

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/spf13/cobra"
)

func getFetchCmd() *cobra.Command {
	var (
		url        string
		output     string
		noProgress bool
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the energy dataset",
		Long: `Download the Our World in Data energy CSV.

The file is stored at ~/.cache/goenergy/owid-energy-data.csv unless
download.path is configured or --output is given. An existing copy is
replaced.

Examples:
  goenergy fetch
  goenergy fetch -o energy.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd, url, output, noProgress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fetchCmd.Flags().StringVarP(&url, "url", "u", "", "dataset URL")
	fetchCmd.Flags().StringVarP(&output, "output", "o", "", "path of the downloaded file")
	fetchCmd.Flags().BoolVarP(&noProgress, "quiet", "q", false, "do not show a progress bar")

	return fetchCmd
}

func runFetch(cmd *cobra.Command, url, output string, noProgress bool) error {
	var opts []config.Option
	if cmd.Flags().Changed("url") {
		opts = append(opts, config.OptDownloadURL(url))
	}
	if cmd.Flags().Changed("output") {
		opts = append(opts, config.OptDownloadPath(output))
	}
	cfg.Update(opts)

	f := dataset.NewFetcher(cfg.Download.URL, cfg.DataPath())
	if !noProgress {
		f.Progress = os.Stderr
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Download.Timeout)
	defer cancel()

	n, err := f.Fetch(ctx)
	if err != nil {
		return err
	}

	gn.Info("Downloaded <em>%s</em> to <em>%s</em>", humanize.Bytes(uint64(n)), f.Path)
	return nil
}
