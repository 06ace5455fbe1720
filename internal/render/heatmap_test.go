package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix(t *testing.T) *ndarray.Array[int32] {
	t.Helper()
	a, err := ndarray.Arange[int32](12)
	require.NoError(t, err)
	a, err = a.Reshape(ndarray.Shape{3, 4})
	require.NoError(t, err)
	return a
}

func TestHeatmap_PNG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Title = "arange(12)"

	require.NoError(t, Heatmap(&buf, testMatrix(t), opts))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "missing PNG signature")
}

func TestHeatmap_SVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = "SVG"

	require.NoError(t, Heatmap(&buf, testMatrix(t), opts))
	assert.Contains(t, buf.String(), "<svg")
}

func TestHeatmap_ConstantValues(t *testing.T) {
	a, err := ndarray.Full[float64](ndarray.Shape{2, 2}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Heatmap(&buf, a, DefaultOptions()))
	assert.NotZero(t, buf.Len())
}

func TestHeatmap_UnsupportedFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "bmp"

	err := Heatmap(&bytes.Buffer{}, testMatrix(t), opts)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestHeatmapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")

	opts := DefaultOptions()
	opts.Format = ""
	require.NoError(t, HeatmapFile(path, testMatrix(t), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestHeatmapFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.bmp")

	opts := DefaultOptions()
	opts.Format = ""
	err := HeatmapFile(path, testMatrix(t), opts)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created, got %v", err)
}

func TestGrid(t *testing.T) {
	g := newGrid(testMatrix(t))

	c, r := g.Dims()
	assert.Equal(t, 4, c)
	assert.Equal(t, 3, r)

	// Row 0 of the array is the top grid row.
	assert.Equal(t, 0.0, g.Z(0, 2))
	assert.Equal(t, 11.0, g.Z(3, 0))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 1.0, g.Y(1))

	v, err := ndarray.Arange[uint8](5)
	require.NoError(t, err)
	vgrid := newGrid(v)
	c, r = vgrid.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 1, r)
	assert.Equal(t, 4.0, vgrid.Z(4, 0))
}

func TestIndexTicks(t *testing.T) {
	ticks := indexTicks(3, func(i int) int { return 2 - i })
	require.Len(t, ticks, 3)
	assert.Equal(t, "2", ticks[0].Label)
	assert.Equal(t, 2.0, ticks[2].Value)
	assert.Equal(t, "0", ticks[2].Label)
}
