package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
)

const (
	maxQuickLookSize = 1024
	graticuleStep    = 1.0 // degrees
	legendHeight     = 24
)

// CreateQuickLookImage renders latitude as a blue ramp with a one degree
// graticule on top, so a grid can be sanity checked at a glance.
func CreateQuickLookImage(ll *raster.LatLon, outputImagePath string) error {
	if ll.Rows() == 0 || ll.Cols() == 0 {
		return fmt.Errorf("empty coordinate grid")
	}
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(outputImagePath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	step := int(math.Ceil(float64(max(ll.Rows(), ll.Cols())) / maxQuickLookSize))
	width := (ll.Cols() + step - 1) / step
	height := (ll.Rows() + step - 1) / step

	b := ll.Bound()
	latRange := b.Max.Lat() - b.Min.Lat()
	if latRange == 0 {
		latRange = 1
	}

	dc := gg.NewContext(width, height+legendHeight)
	dc.SetRGB(1, 1, 1) // White background
	dc.Clear()

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			row, col := py*step, px*step
			lat := ll.Latitude[row][col]
			v := (lat - b.Min.Lat()) / latRange
			if onGraticule(ll, row, col, step) {
				dc.SetRGB(0.1, 0.1, 0.1)
			} else {
				dc.SetRGB(0.15+0.85*v, 0.35+0.65*v, 1)
			}
			dc.SetPixel(px, py)
		}
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%s  lat %.3f..%.3f  lon %.3f..%.3f",
		ll.CRS, b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon()),
		4, float64(height)+legendHeight/2, 0, 0.5)

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// onGraticule is true when a whole degree of latitude or longitude lies
// between this sample and the previous one in the same row or column.
func onGraticule(ll *raster.LatLon, row, col, step int) bool {
	cell := func(v float64) float64 { return math.Floor(v / graticuleStep) }
	if col >= step {
		if cell(ll.Longitude[row][col]) != cell(ll.Longitude[row][col-step]) ||
			cell(ll.Latitude[row][col]) != cell(ll.Latitude[row][col-step]) {
			return true
		}
	}
	if row >= step {
		if cell(ll.Longitude[row][col]) != cell(ll.Longitude[row-step][col]) ||
			cell(ll.Latitude[row][col]) != cell(ll.Latitude[row-step][col]) {
			return true
		}
	}
	return false
}
