// Package render draws arrays as heatmap images using gonum plot.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/ndarray"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrUnsupportedFormat is returned for image formats gonum plot cannot write.
var ErrUnsupportedFormat = errors.New("render: unsupported image format")

// Options controls heatmap rendering.
type Options struct {
	Title  string    // Plot title; empty for none.
	Width  vg.Length // Image width.
	Height vg.Length // Image height.
	Format string    // "png", "svg", "pdf", "jpg", "tif" or "eps".
	Colors int       // Number of palette steps.
}

// DefaultOptions returns a 4x4 inch PNG with a 16-step heat palette.
func DefaultOptions() Options {
	return Options{
		Width:  4 * vg.Inch,
		Height: 4 * vg.Inch,
		Format: "png",
		Colors: 16,
	}
}

var formats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true,
	"tif": true, "tiff": true, "eps": true,
}

// checkFormat normalizes an image format name and rejects the ones gonum
// plot cannot write.
func checkFormat(format string) (string, error) {
	f := strings.ToLower(format)
	if !formats[f] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f, nil
}

// grid adapts an array to plotter.GridXYZ. Column c maps to X, and row r of
// the array is drawn r rows from the top.
type grid struct {
	rows, cols int
	values     []float64
}

func (g grid) Dims() (c, r int) { return g.cols, g.rows }

func (g grid) Z(c, r int) float64 {
	return g.values[(g.rows-1-r)*g.cols+c]
}

func (g grid) X(c int) float64 { return float64(c) }

func (g grid) Y(r int) float64 { return float64(r) }

func newGrid[T ndarray.DType](a *ndarray.Array[T]) grid {
	shape := a.Shape()
	rows, cols := 1, shape[0]
	if len(shape) == 2 {
		rows, cols = shape[0], shape[1]
	}

	data := a.Data()
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(v)
	}
	return grid{rows: rows, cols: cols, values: values}
}

// Heatmap renders a as a heatmap to w. A vector is drawn as a single row.
func Heatmap[T ndarray.DType](w io.Writer, a *ndarray.Array[T], opts Options) error {
	if a.NDim() != 1 && a.NDim() != 2 {
		return fmt.Errorf("%w: heatmap of a rank-%d array", ndarray.ErrUnsupportedOperation, a.NDim())
	}
	format, err := checkFormat(opts.Format)
	if err != nil {
		return err
	}
	if opts.Colors < 2 {
		opts.Colors = DefaultOptions().Colors
	}

	g := newGrid(a)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = indexTicks(g.cols, func(c int) int { return c })
	p.Y.Tick.Marker = indexTicks(g.rows, func(r int) int { return g.rows - 1 - r })

	h := plotter.NewHeatMap(g, palette.Heat(opts.Colors, 1))
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}
	p.Add(h)

	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write heatmap: %w", err)
	}
	return nil
}

// HeatmapFile renders a to path. An empty opts.Format is taken from the
// file extension.
func HeatmapFile[T ndarray.DType](path string, a *ndarray.Array[T], opts Options) (err error) {
	if opts.Format == "" {
		opts.Format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	if _, err := checkFormat(opts.Format); err != nil {
		return err
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for image output
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Heatmap(f, a, opts)
}

// indexTicks labels every grid position n with the array index label(i).
func indexTicks(n int, label func(i int) int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(label(i))}
	}
	return ticks
}
