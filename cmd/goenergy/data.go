package main

import (
	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/sartorproj/goenergy/internal/iofs"
	"github.com/spf13/cobra"
)

// addWindowFlags adds --from and --to to commands that clean the dataset.
func addWindowFlags(cmd *cobra.Command, from, to *int) {
	cmd.Flags().IntVar(from, "from", 0, "first year kept (default from config)")
	cmd.Flags().IntVar(to, "to", 0, "last year kept (default from config)")
}

// applyWindow overrides the configured window with the flags that were set.
func applyWindow(cmd *cobra.Command, from, to int) {
	w := cfg.Window
	if cmd.Flags().Changed("from") {
		w.From = from
	}
	if cmd.Flags().Changed("to") {
		w.To = to
	}
	if w != cfg.Window {
		cfg.Update([]config.Option{config.OptWindow(w.From, w.To)})
	}
}

// loadRaw reads the downloaded dataset.
func loadRaw() (*dataset.Raw, error) {
	path := cfg.DataPath()
	if !iofs.FileExists(path) {
		gn.Warn("Dataset not found, run <em>goenergy fetch</em> first")
	}
	return dataset.Load(path)
}

// loadView reads, cleans and filters the dataset.
func loadView(countries []string) (*dataset.View, error) {
	raw, err := loadRaw()
	if err != nil {
		return nil, err
	}

	w := dataset.Window{From: cfg.Window.From, To: cfg.Window.To}
	table, err := dataset.Clean(raw, w)
	if err != nil {
		return nil, err
	}

	return dataset.Filter(table, countries)
}
