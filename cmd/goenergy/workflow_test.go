package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/errcode"
	"github.com/sartorproj/goenergy/internal/iofs"
	"github.com/sartorproj/goenergy/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func energyCSV(countries ...string) string {
	var b strings.Builder
	b.WriteString("iso_code,country,year,gdp," +
		"renewables_energy_per_capita,fossil_energy_per_capita\n")
	for k, c := range countries {
		scale := float64(k + 1)
		for y := 1960; y <= 2022; y++ {
			x := float64(y - 1960)
			fmt.Fprintf(&b, "%s,%s,%d,%.1f,%.3f,%.3f\n",
				strings.ToUpper(c[:3]), c, y,
				1e12*scale+2e10*x+5e9*math.Sin(0.7*x+scale),
				100+3*x+10*math.Sin(x),
				40000-50*x*scale+300*math.Cos(1.3*x),
			)
		}
	}
	return b.String()
}

func execute(args ...string) (string, error) {
	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (string, error) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestWorkflow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	payload := energyCSV("Germany", "France", "Chile")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()
	t.Setenv("GOENERGY_DOWNLOAD_URL", srv.URL+"/owid-energy-data.csv")
	t.Setenv("GOENERGY_FORECAST_MAX_P", "3")
	t.Setenv("GOENERGY_FORECAST_MAX_Q", "3")

	_, err := execute("fetch", "-q")
	require.NoError(t, err)
	assert.True(t, iofs.FileExists(config.ConfigFilePath(home)))
	assert.True(t, iofs.FileExists(config.DataFilePath(home)))
	assert.Equal(t, srv.URL+"/owid-energy-data.csv", cfg.Download.URL)
	assert.Equal(t, 3, cfg.Forecast.MaxP)

	out, err := execute("head", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "189 rows, 6 columns")
	assert.Contains(t, out, "Germany")

	out, err = execute("head", "--clean")
	require.NoError(t, err)
	assert.Contains(t, out, "147 rows, 5 columns")

	out, err = execute("head", "--clean", "--from", "2000", "--to", "2009")
	require.NoError(t, err)
	assert.Contains(t, out, "30 rows, 5 columns")

	png := filepath.Join(home, "gdp.png")
	_, err = execute("plot", "-c", "Germany", "-c", "France", "-v", "gdp", "-o", png)
	require.NoError(t, err)
	assert.True(t, iofs.FileExists(png))

	nothing := filepath.Join(home, "nuclear.png")
	_, err = execute("plot", "-c", "Germany", "-v", "nuclear", "-o", nothing)
	require.NoError(t, err)
	assert.False(t, iofs.FileExists(nothing))

	_, err = execute("plot", "-c", "Germany,Atlantis", "-v", "gdp", "-o", png)
	assert.Equal(t, errcode.UnknownCountryError, code(t, err))

	_, err = execute("plot", "-v", "gdp")
	assert.Error(t, err, "country flag is required")

	dir := t.TempDir()
	fpng := filepath.Join(dir, "fossil.png")
	yml := filepath.Join(dir, "fossil.yaml")
	xlsx := filepath.Join(dir, "fossil.xlsx")
	csv := filepath.Join(dir, "fossil.csv")
	out, err = execute("forecast", "-c", "Germany", "-c", "France", "-v", "fossil",
		"-o", fpng, "--report", yml, "--xlsx", xlsx, "--csv", csv, "--horizon", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "LB p")
	assert.Contains(t, out, "2019: ")
	assert.Contains(t, out, "2023: ")
	for _, p := range []string{fpng, yml, xlsx, csv} {
		assert.True(t, iofs.FileExists(p), p)
	}

	f, err := os.Open(yml)
	require.NoError(t, err)
	defer f.Close()
	rep, err := report.ReadYAML(f)
	require.NoError(t, err)
	require.Len(t, rep.Projections, 2)
	assert.Equal(t, "France", rep.Projections[1].Country)
	assert.Len(t, rep.Projections[1].History, 49)
	require.Len(t, rep.Projections[1].Predicted, 5)
	assert.Equal(t, 2019, rep.Projections[1].Predicted[0].Year)
	assert.NotNil(t, rep.Projections[1].Diagnostics.LjungBoxP)
	assert.Greater(t, rep.Projections[1].Diagnostics.DurbinWatson, 0.0)

	_, err = execute("forecast", "-c", "Germany", "-v", "nuclear", "-o", fpng)
	assert.Equal(t, errcode.UnknownVariableError, code(t, err))
}

func TestHeadWithoutDataset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute("head")
	assert.Equal(t, errcode.ReadFileError, code(t, err))
}

func code(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestFetchCanceled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(energyCSV("Germany")))
	}))
	defer srv.Close()
	t.Setenv("GOENERGY_DOWNLOAD_URL", srv.URL+"/owid-energy-data.csv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := executeContext(ctx, "fetch", "-q")
	require.Error(t, err)
	assert.False(t, iofs.FileExists(config.DataFilePath(home)))
}
