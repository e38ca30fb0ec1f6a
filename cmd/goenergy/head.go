package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/spf13/cobra"
)

func getHeadCmd() *cobra.Command {
	var (
		rows     int
		cleaned  bool
		from, to int
	)

	headCmd := &cobra.Command{
		Use:   "head",
		Short: "Show the first rows of the dataset",
		Long: `Print the size and the first rows of the downloaded dataset.

With --clean the rows are taken from the cleaned five-column table,
restricted to the configured years or to --from and --to.

Examples:
  goenergy head
  goenergy head -n 20 --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyWindow(cmd, from, to)
			err := runHead(cmd, rows, cleaned)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	headCmd.Flags().IntVarP(&rows, "rows", "n", 5, "number of rows")
	headCmd.Flags().BoolVar(&cleaned, "clean", false, "show the cleaned table")
	addWindowFlags(headCmd, &from, &to)

	return headCmd
}

func runHead(cmd *cobra.Command, rows int, cleaned bool) error {
	raw, err := loadRaw()
	if err != nil {
		return err
	}

	if cleaned {
		w := dataset.Window{From: cfg.Window.From, To: cfg.Window.To}
		table, err := dataset.Clean(raw, w)
		if err != nil {
			return err
		}
		raw = dataset.NewRaw(table.DataFrame())
	}

	nrow, ncol := raw.Dims()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s rows, %d columns\n", humanize.Comma(int64(nrow)), ncol)
	fmt.Fprintln(out, raw.Head(rows))
	return nil
}
