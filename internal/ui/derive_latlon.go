package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wilhelmuslab/icefloe-latlon/internal/delivery"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
)

// DeriveLatLon handles the UI for deriving the coordinate grid of one raster
func DeriveLatLon() {
	imagePath, err := SelectRaster()
	if err != nil {
		PrintError(err.Error())
		return
	}

	name := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	resultPath, err := CreateResultDirectory(properties.OutputDir(), name)
	if err != nil {
		PrintError(err.Error())
		return
	}

	var csvPath, pngPath string
	if ReadYesNo("Export the full grid as CSV? (Y/n): ", true) {
		csvPath = filepath.Join(resultPath, name+".latlon.csv")
	}
	if ReadYesNo("Render a quick-look image? (Y/n): ", true) {
		pngPath = filepath.Join(resultPath, name+".quicklook.png")
	}

	ll, err := delivery.DeriveLatLon(imagePath, csvPath, pngPath, true)
	if err != nil {
		PrintError(fmt.Sprintf("Error deriving lat/lon: %s", err.Error()))
		return
	}

	PrintLatLonSummary(ll, imagePath)
}

// PrintLatLonSummary reports the grid extent and warns about rotated grids.
func PrintLatLonSummary(ll *raster.LatLon, imagePath string) {
	if !ll.AxisAligned {
		PrintWarning("The raster geotransform has rotation terms. The X/Y axis vectors only\nhold the first row and column; use the full Longitude/Latitude grids instead.")
	}
	s := ll.Summarize(imagePath)
	PrintSuccess(fmt.Sprintf("Successful derivation!\nCRS: %s\nShape: %d rows x %d cols\nLongitude: %.6f to %.6f\nLatitude: %.6f to %.6f",
		s.CRS, s.Rows, s.Cols, s.MinLon, s.MaxLon, s.MinLat, s.MaxLat))
}
