package raster

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/wilhelmuslab/icefloe-latlon/internal/geo"
)

// ErrNoSpatialRef is returned for rasters without a coordinate reference system.
var ErrNoSpatialRef = errors.New("raster has no coordinate reference system")

// LatLon holds the geographic coordinate of every pixel centre of a raster.
//
// X and Y are the native coordinates along the first row and first column.
// They only describe the whole grid when AxisAligned is true.
type LatLon struct {
	CRS          string
	Longitude    [][]float64
	Latitude     [][]float64
	X            []float64
	Y            []float64
	GeoTransform [6]float64
	AxisAligned  bool
}

func (ll *LatLon) Rows() int {
	return len(ll.Latitude)
}

func (ll *LatLon) Cols() int {
	if len(ll.Latitude) == 0 {
		return 0
	}
	return len(ll.Latitude[0])
}

func openDataset(path string) (*godal.Dataset, error) {
	return godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
}

// GetLatLon computes the longitude and latitude of every pixel centre of the
// raster at imagePath. The raster is only read for its metadata and is
// closed before returning.
func GetLatLon(imagePath string) (*LatLon, error) {
	ds, err := openDataset(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", imagePath, err)
	}
	defer ds.Close()

	ll, err := latLonFromDataset(ds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", imagePath, err)
	}
	return ll, nil
}

func latLonFromDataset(ds *godal.Dataset) (*LatLon, error) {
	if ds.Projection() == "" {
		return nil, ErrNoSpatialRef
	}

	gt, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get GeoTransform: %w", err)
	}

	srcSR := ds.SpatialRef()
	defer srcSR.Close()
	crs, err := geo.CRSString(srcSR)
	if err != nil {
		return nil, err
	}

	structure := ds.Structure()
	nrows, ncols := structure.SizeY, structure.SizeX

	xs, ys := nativeGrid(gt, nrows, ncols)

	x := make([]float64, ncols)
	copy(x, xs[:ncols])
	y := make([]float64, nrows)
	for row := range y {
		y[row] = ys[row*ncols]
	}

	dstSR, err := godal.NewSpatialRefFromEPSG(geo.EPSGWGS84)
	if err != nil {
		return nil, fmt.Errorf("failed to create WGS84 spatial ref: %w", err)
	}
	defer dstSR.Close()

	tr, err := geo.NewTransformer(srcSR, dstSR)
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	// xs, ys become longitudes, latitudes
	if err := tr.Transform(xs, ys); err != nil {
		return nil, err
	}

	longitude, err := Reshape(xs, nrows, ncols)
	if err != nil {
		return nil, err
	}
	latitude, err := Reshape(ys, nrows, ncols)
	if err != nil {
		return nil, err
	}

	return &LatLon{
		CRS:          crs,
		Longitude:    longitude,
		Latitude:     latitude,
		X:            x,
		Y:            y,
		GeoTransform: gt,
		AxisAligned:  AxisAligned(gt),
	}, nil
}
