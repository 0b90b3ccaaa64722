package chart

import (
	"errors"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options controls the output image.
type Options struct {
	WidthInches  float64
	HeightInches float64
}

// DefaultOptions matches a 12x8 inch report figure.
var DefaultOptions = Options{WidthInches: 12, HeightInches: 8}

var (
	welfareColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	outputColor    = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	referenceColor = color.Gray{Y: 128}
)

// formats maps file extensions to gonum/plot writer formats.
var formats = map[string]string{
	".png":  "png",
	".jpg":  "jpg",
	".jpeg": "jpg",
	".svg":  "svg",
	".pdf":  "pdf",
}

// Render draws spec and writes it to path. The image is written to a temporary
// file in the same directory and renamed into place, so a failed run never leaves
// a partial chart behind.
func Render(spec Spec, path string, opts Options) error {
	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return &RenderError{Path: path, Op: "build", Err: errors.New("unsupported image format (use .png, .jpg, .svg, or .pdf)")}
	}
	if opts.WidthInches <= 0 || opts.HeightInches <= 0 {
		return &RenderError{Path: path, Op: "build", Err: errors.New("chart dimensions must be positive")}
	}

	p, err := newPlot(spec)
	if err != nil {
		return &RenderError{Path: path, Op: "build", Err: err}
	}

	wt, err := p.WriterTo(vg.Length(opts.WidthInches)*vg.Inch, vg.Length(opts.HeightInches)*vg.Inch, format)
	if err != nil {
		return &RenderError{Path: path, Op: "encode", Err: err}
	}

	if err := writeAtomic(path, wt); err != nil {
		return &RenderError{Path: path, Op: "write", Err: err}
	}

	zap.L().Debug("chart written",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("years", len(spec.Years)),
	)
	return nil
}

func newPlot(spec Spec) (*plot.Plot, error) {
	if len(spec.Years) == 0 {
		return nil, errors.New("no data to plot")
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Tick.Marker = yearTicks(spec.Years)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	p.Add(plotter.NewGrid())

	ref := plotter.NewFunction(func(float64) float64 { return spec.Reference })
	ref.Color = referenceColor
	ref.Width = vg.Points(1)
	ref.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(ref)

	for i, s := range spec.Series {
		if len(s.Values) != len(spec.Years) {
			return nil, errors.New("series " + strconv.Quote(s.Label) + " does not match the year axis")
		}
		pts := make(plotter.XYs, len(spec.Years))
		for j, y := range spec.Years {
			pts[j].X = float64(y)
			pts[j].Y = s.Values[j]
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		c := seriesColor(i)
		line.Color = c
		line.Width = vg.Points(1.5)
		if s.Dashed {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		points.Color = c
		points.Radius = vg.Points(3)
		switch s.Glyph {
		case Square:
			points.Shape = draw.SquareGlyph{}
		default:
			points.Shape = draw.CircleGlyph{}
		}

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

func seriesColor(i int) color.Color {
	if i == 0 {
		return welfareColor
	}
	return outputColor
}

// yearTicks labels every data year on the x axis.
func yearTicks(years []int) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, len(years))
		for _, y := range years {
			v := float64(y)
			if v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(y)})
		}
		return ticks
	})
}

func writeAtomic(path string, wt io.WriterTo) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".welfare-index-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = wt.WriteTo(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
