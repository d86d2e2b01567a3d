package raster

import "fmt"

// PixelCenter maps a (row, col) index to the native coordinate of the pixel
// centre using a GDAL-ordered geotransform.
func PixelCenter(gt [6]float64, row, col int) (x, y float64) {
	px := float64(col) + 0.5
	py := float64(row) + 0.5
	x = gt[0] + px*gt[1] + py*gt[2]
	y = gt[3] + px*gt[4] + py*gt[5]
	return x, y
}

// AxisAligned reports whether the geotransform has no rotation or shear
// term, i.e. whether every column shares one x and every row one y.
func AxisAligned(gt [6]float64) bool {
	return gt[2] == 0 && gt[4] == 0
}

// nativeGrid returns the native x and y of every pixel centre, row-major.
func nativeGrid(gt [6]float64, nrows, ncols int) (xs, ys []float64) {
	xs = make([]float64, nrows*ncols)
	ys = make([]float64, nrows*ncols)
	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			i := row*ncols + col
			xs[i], ys[i] = PixelCenter(gt, row, col)
		}
	}
	return xs, ys
}

// Reshape views a row-major flat slice as nrows x ncols. Rows share the
// backing array of flat.
func Reshape(flat []float64, nrows, ncols int) ([][]float64, error) {
	if nrows < 0 || ncols < 0 || len(flat) != nrows*ncols {
		return nil, fmt.Errorf("cannot reshape %d values into %dx%d", len(flat), nrows, ncols)
	}
	out := make([][]float64, nrows)
	for row := range out {
		start := row * ncols
		out[row] = flat[start : start+ncols : start+ncols]
	}
	return out, nil
}
