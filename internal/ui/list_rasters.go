package ui

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/wilhelmuslab/icefloe-latlon/internal/batch"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
)

// ListRasters prints the GeoTIFFs found under the images folder.
func ListRasters() []string {
	dir := properties.ImagesDir()
	files, err := batch.FindRasters(dir)
	if err != nil {
		PrintError(fmt.Sprintf("Error reading images folder: %s", err.Error()))
		return nil
	}

	PrintWarning(fmt.Sprintf("To add a new raster, copy its '.tif' file into '%s'.", dir))

	fmt.Printf("\n%sAvailable rasters:%s\n", ColorGreen, ColorReset)
	for i, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = file
		}
		fmt.Printf("%s%d. %s%s\n", ColorGreen, i+1, rel, ColorReset)
	}
	return files
}

// SelectRaster accepts either a number from the listing or a path.
func SelectRaster() (string, error) {
	files := ListRasters()
	input := ReadString("Enter the raster number or a path to a GeoTIFF: ")
	if input == "" {
		return "", fmt.Errorf("raster cannot be empty")
	}

	if choice, err := strconv.Atoi(input); err == nil {
		if choice < 1 || choice > len(files) {
			return "", fmt.Errorf("value must be between 1 and %d", len(files))
		}
		return files[choice-1], nil
	}
	return input, nil
}
