package geo

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
)

const (
	EPSGWGS84 = 4326
	// EPSGPolarStereoNorth is NSIDC Sea Ice Polar Stereographic North.
	EPSGPolarStereoNorth = 3413
)

// Transformer reprojects batches of coordinates between two spatial
// references. Axis order is x=longitude/easting, y=latitude/northing on
// both sides.
type Transformer struct {
	trn   *godal.Transform
	owned []*godal.SpatialRef
}

// NewTransformer builds a transformer from src to dst. The caller keeps
// ownership of both spatial references.
func NewTransformer(src, dst *godal.SpatialRef) (*Transformer, error) {
	if src == nil || dst == nil {
		return nil, errors.New("spatial reference is required on both sides of a transform")
	}
	trn, err := godal.NewTransform(src, dst)
	if err != nil {
		return nil, fmt.Errorf("create coordinate transform: %w", err)
	}
	return &Transformer{trn: trn}, nil
}

// NewEPSGTransformer builds a transformer between two EPSG codes and owns
// the spatial references it creates.
func NewEPSGTransformer(srcCode, dstCode int) (*Transformer, error) {
	src, err := godal.NewSpatialRefFromEPSG(srcCode)
	if err != nil {
		return nil, fmt.Errorf("create EPSG:%d spatial ref: %w", srcCode, err)
	}
	dst, err := godal.NewSpatialRefFromEPSG(dstCode)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("create EPSG:%d spatial ref: %w", dstCode, err)
	}
	t, err := NewTransformer(src, dst)
	if err != nil {
		src.Close()
		dst.Close()
		return nil, err
	}
	t.owned = []*godal.SpatialRef{src, dst}
	return t, nil
}

// Transform reprojects xs and ys in place with a single GDAL call.
func (t *Transformer) Transform(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("coordinate length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil
	}
	if err := t.trn.TransformEx(xs, ys, nil, nil); err != nil {
		return fmt.Errorf("transform %d points: %w", len(xs), err)
	}
	return nil
}

// TransformPoint is a convenience wrapper for a single coordinate pair.
func (t *Transformer) TransformPoint(x, y float64) (float64, float64, error) {
	xs, ys := []float64{x}, []float64{y}
	if err := t.Transform(xs, ys); err != nil {
		return 0, 0, err
	}
	return xs[0], ys[0], nil
}

func (t *Transformer) Close() {
	if t.trn != nil {
		t.trn.Close()
		t.trn = nil
	}
	for _, sr := range t.owned {
		sr.Close()
	}
	t.owned = nil
}
