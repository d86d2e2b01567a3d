// Package testutil builds small georeferenced rasters for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
)

// PolarStereoTransform is a 100 m grid whose upper-left corner sits in the
// Greenland Sea in EPSG:3413.
var PolarStereoTransform = [6]float64{655000, 100, 0, -1005000, 0, -100}

// WriteGeoTIFF creates a single band GeoTIFF of nrows x ncols under
// t.TempDir(). epsg <= 0 leaves the raster without a spatial reference.
func WriteGeoTIFF(t testing.TB, name string, nrows, ncols int, gt [6]float64, epsg int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	WriteGeoTIFFAt(t, path, nrows, ncols, gt, epsg)
	return path
}

func WriteGeoTIFFAt(t testing.TB, path string, nrows, ncols int, gt [6]float64, epsg int) {
	t.Helper()
	ds, err := godal.Create(godal.GTiff, path, 1, godal.Byte, ncols, nrows)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := ds.SetGeoTransform(gt); err != nil {
		t.Fatalf("set geotransform: %v", err)
	}
	if epsg > 0 {
		sr, err := godal.NewSpatialRefFromEPSG(epsg)
		if err != nil {
			t.Fatalf("create EPSG:%d: %v", epsg, err)
		}
		defer sr.Close()
		if err := ds.SetSpatialRef(sr); err != nil {
			t.Fatalf("set spatial ref: %v", err)
		}
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}
