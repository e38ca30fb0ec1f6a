package chart_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/chart"
	"github.com/sartorproj/goenergy/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *chart.Figure {
	fig := chart.New("gdp", "year", "gdp")
	fig.AddLine("Germany", []float64{2000, 2001, 2002}, []float64{1, 2, 3}, false)
	fig.AddLine("Predicted for Germany", []float64{2003, 2004}, []float64{3.5, 4}, true)
	fig.AddLine("France", []float64{2000, 2001, 2002}, []float64{2, math.NaN(), 1}, false)
	fig.SetLegend("Germany", "Predicted for Germany", "France")
	return fig
}

func TestFigure(t *testing.T) {
	fig := chart.New("t", "x", "y")
	assert.True(t, fig.Empty())

	fig.AddLine("a", []float64{1, 2, 3}, []float64{4, 5}, false)
	assert.False(t, fig.Empty())
	l, ok := fig.Line("a")
	require.True(t, ok)
	assert.Equal(t, []chart.Point{{X: 1, Y: 4}, {X: 2, Y: 5}}, l.Points)
	assert.False(t, l.Dashed)

	_, ok = fig.Line("b")
	assert.False(t, ok)

	entries := []string{"a"}
	fig.SetLegend(entries...)
	entries[0] = "changed"
	assert.Equal(t, []string{"a"}, fig.Legend)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Render(&buf, sample(), "png", 4, 2)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	err = chart.Render(&buf, sample(), "SVG", 4, 2)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Render(&buf, chart.New("empty", "", ""), "png", 2, 2)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "gdp.png")
	err := chart.Save(sample(), path, chart.DefaultWidth/4, chart.DefaultHeight/4)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	bad := filepath.Join(dir, "gdp.docx")
	err = chart.Save(sample(), bad, 4, 2)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RenderError, gnErr.Code)
	_, err = os.Stat(bad)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = chart.Save(sample(), filepath.Join(dir, "none", "gdp.png"), 4, 2)
	require.Error(t, err)
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RenderError, gnErr.Code)
}
