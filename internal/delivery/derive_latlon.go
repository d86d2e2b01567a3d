package delivery

import (
	"fmt"

	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
	"github.com/wilhelmuslab/icefloe-latlon/output"
)

// DeriveLatLon computes the coordinate grid of imagePath and writes the
// optional exports. Empty paths skip the matching export.
func DeriveLatLon(imagePath, gridCSVPath, quickLookPath string, showProgress bool) (*raster.LatLon, error) {
	ll, err := raster.GetLatLon(imagePath)
	if err != nil {
		return nil, err
	}

	if gridCSVPath != "" {
		if err := output.CreateGridCSV(ll, gridCSVPath, showProgress); err != nil {
			return nil, fmt.Errorf("export grid CSV: %w", err)
		}
		fmt.Println("Grid CSV created successfully at", gridCSVPath)
	}
	if quickLookPath != "" {
		if err := output.CreateQuickLookImage(ll, quickLookPath); err != nil {
			return nil, fmt.Errorf("export quick-look image: %w", err)
		}
		fmt.Println("Quick-look image created successfully at", quickLookPath)
	}
	return ll, nil
}
