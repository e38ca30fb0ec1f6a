package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	goenergy "github.com/sartorproj/goenergy"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/internal/iofs"
	"github.com/sartorproj/goenergy/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", goenergy.Version, goenergy.Build),
		Use:     "goenergy",
		Short:   "Explore and forecast per-country energy indicators",
		Long: `goenergy works with the Our World in Data energy dataset.

It keeps five columns (country, year, gdp, renewables and fossil energy
per capita) for the years 1970-2018, draws them for chosen countries and
forecasts them with automatically selected ARIMA models.

Commands:
  - fetch:    download the dataset
  - head:     show the first rows of the downloaded dataset
  - plot:     draw a variable for several countries
  - forecast: draw a variable with a ten year ARIMA forecast

Variables: gdp, renewables, fossil.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GOENERGY_*)
  3. Config file (~/.config/goenergy/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (download.url → GOENERGY_DOWNLOAD_URL).

  Examples:
    GOENERGY_DOWNLOAD_URL        Dataset location
    GOENERGY_DOWNLOAD_PATH       Local copy of the dataset
    GOENERGY_WINDOW_FROM         First year kept
    GOENERGY_WINDOW_TO           Last year kept
    GOENERGY_FORECAST_HORIZON    Number of projected years
    GOENERGY_LOG_LEVEL           Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "goenergy version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for goenergy")

	rootCmd.AddCommand(
		getFetchCmd(),
		getHeadCmd(),
		getPlotCmd(),
		getForecastCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Log with defaults until the config file is read.
	defaultLog := config.New().Log
	if err = logger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = logger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))
	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds the persistent settings of config.yaml to GOENERGY_
// environment variables. They are listed explicitly to keep the set of
// allowed variables visible.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("GOENERGY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"download.url",
		"download.path",
		"download.timeout",

		"window.from",
		"window.to",

		"forecast.horizon",
		"forecast.max_p",
		"forecast.max_q",
		"forecast.jobs",

		"chart.width",
		"chart.height",

		"log.level",
		"log.format",
		"log.destination",
	}
	for _, k := range keys {
		env := "GOENERGY_" + strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		_ = v.BindEnv(k, env)
	}

	v.AutomaticEnv()
}
