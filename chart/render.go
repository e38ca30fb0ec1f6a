package chart

import (
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default size of a rendered figure in inches.
const (
	DefaultWidth  = 16.0
	DefaultHeight = 8.0
)

// Formats lists the supported output formats.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Save renders fig to path. The format is taken from the file extension.
// Width and height are in inches.
func Save(fig *Figure, path string, width, height float64) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !slices.Contains(Formats, format) {
		return FormatError(path, format)
	}

	p, err := build(fig)
	if err != nil {
		return RenderError(path, err)
	}

	err = p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
	if err != nil {
		return RenderError(path, err)
	}
	slog.Info("Chart saved", "path", path, "lines", len(fig.Lines))
	return nil
}

// Render writes fig to w in the given format.
func Render(w io.Writer, fig *Figure, format string, width, height float64) error {
	format = strings.ToLower(format)
	if !slices.Contains(Formats, format) {
		return FormatError("writer", format)
	}

	p, err := build(fig)
	if err != nil {
		return RenderError("writer", err)
	}

	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return RenderError("writer", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return RenderError("writer", err)
	}
	return nil
}

func build(fig *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Add(plotter.NewGrid())

	// A dashed line takes the color of the solid line before it.
	color := -1
	lines := make(map[string]*plotter.Line, len(fig.Lines))
	for _, l := range fig.Lines {
		line, err := plotter.NewLine(xys(l.Points))
		if err != nil {
			return nil, err
		}
		if !l.Dashed || color < 0 {
			color++
		}
		line.Color = plotutil.Color(color)
		line.Width = vg.Points(2)
		if l.Dashed {
			line.Dashes = plotutil.Dashes(1)
		}
		if len(line.XYs) > 0 {
			p.Add(line)
		}
		if _, ok := lines[l.Label]; !ok {
			lines[l.Label] = line
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	for _, name := range fig.Legend {
		if line, ok := lines[name]; ok {
			p.Legend.Add(name, line)
			continue
		}
		p.Legend.Add(name)
	}
	return p, nil
}

// xys drops points that cannot be drawn.
func xys(pts []Point) plotter.XYs {
	res := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		res = append(res, plotter.XY{X: pt.X, Y: pt.Y})
	}
	return res
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
