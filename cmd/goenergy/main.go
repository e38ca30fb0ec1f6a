// Package main provides the goenergy CLI application.
// goenergy downloads the Our World in Data energy dataset, plots
// per-country indicators and forecasts them with ARIMA models.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
