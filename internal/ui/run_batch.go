package ui

import (
	"fmt"

	"github.com/wilhelmuslab/icefloe-latlon/internal/delivery"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
)

// RunBatch handles the UI for processing every raster in a folder
func RunBatch() {
	inputDir := ReadPathOr("Enter the folder with the rasters", properties.ImagesDir())
	outputDir := ReadPathOr("Enter the output folder", properties.OutputDir())

	req := delivery.BatchRequest{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Workers:   properties.BatchWorkers(),
		UseCache:  ReadYesNo("Skip rasters processed before? (Y/n): ", true),
		GridCSV:   ReadYesNo("Export the full grid of each raster as CSV? (y/N): ", false),
		QuickLook: ReadYesNo("Render quick-look images? (Y/n): ", true),
	}

	report, err := delivery.RunBatch(req)
	if err != nil {
		PrintError(fmt.Sprintf("Error running batch: %s", err.Error()))
		if report == nil {
			return
		}
	}

	for _, s := range report.Summaries {
		if !s.AxisAligned {
			PrintWarning(fmt.Sprintf("%s has a rotated geotransform.", s.Path))
		}
	}
	PrintSuccess(fmt.Sprintf("Batch finished: %d processed, %d failed.", len(report.Summaries), len(report.Failed)))
}
