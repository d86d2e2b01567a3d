package output

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
)

// syntheticGrid is a lon/lat raster whose coordinates are its own native
// coordinates, so no projection library is needed.
func syntheticGrid(t *testing.T, nrows, ncols int) *raster.LatLon {
	t.Helper()
	gt := [6]float64{-20, 0.5, 0, 80, 0, -0.5}
	lons := make([]float64, nrows*ncols)
	lats := make([]float64, nrows*ncols)
	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			lons[row*ncols+col], lats[row*ncols+col] = raster.PixelCenter(gt, row, col)
		}
	}
	longitude, err := raster.Reshape(lons, nrows, ncols)
	require.NoError(t, err)
	latitude, err := raster.Reshape(lats, nrows, ncols)
	require.NoError(t, err)

	x := make([]float64, ncols)
	copy(x, lons[:ncols])
	y := make([]float64, nrows)
	for row := range y {
		y[row] = lats[row*ncols]
	}
	return &raster.LatLon{
		CRS:          "EPSG:4326",
		Longitude:    longitude,
		Latitude:     latitude,
		X:            x,
		Y:            y,
		GeoTransform: gt,
		AxisAligned:  true,
	}
}

func TestCreateGridCSV(t *testing.T) {
	ll := syntheticGrid(t, 3, 4)
	path := filepath.Join(t.TempDir(), "grid", "floes.csv")

	require.NoError(t, CreateGridCSV(ll, path, false))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var rows []GridRow
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 12)

	assert.Equal(t, GridRow{Row: 0, Col: 0, X: -19.75, Y: 79.75, Longitude: -19.75, Latitude: 79.75}, rows[0])
	last := rows[11]
	assert.Equal(t, 2, last.Row)
	assert.Equal(t, 3, last.Col)
	assert.Equal(t, ll.Longitude[2][3], last.Longitude)
	assert.Equal(t, ll.Latitude[2][3], last.Latitude)
}

func TestCreateGridCSVEmpty(t *testing.T) {
	err := CreateGridCSV(&raster.LatLon{}, filepath.Join(t.TempDir(), "x.csv"), false)
	assert.Error(t, err)
}

func TestCreateQuickLookImage(t *testing.T) {
	ll := syntheticGrid(t, 10, 16)
	base := filepath.Join(t.TempDir(), "quicklook")

	require.NoError(t, CreateQuickLookImage(ll, base))

	file, err := os.Open(base + ".png")
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)

	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 10+legendHeight, img.Bounds().Dy())
}

func TestCreateQuickLookImageDownsamples(t *testing.T) {
	ll := syntheticGrid(t, 2, 2*maxQuickLookSize+10)
	path := filepath.Join(t.TempDir(), "wide.png")

	require.NoError(t, CreateQuickLookImage(ll, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, maxQuickLookSize)
}
