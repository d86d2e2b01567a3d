package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
)

type GridRow struct {
	Row       int     `csv:"row"`
	Col       int     `csv:"col"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Longitude float64 `csv:"longitude"`
	Latitude  float64 `csv:"latitude"`
}

func gridRows(ll *raster.LatLon, row int) []GridRow {
	rows := make([]GridRow, ll.Cols())
	for col := range rows {
		x, y := raster.PixelCenter(ll.GeoTransform, row, col)
		rows[col] = GridRow{
			Row:       row,
			Col:       col,
			X:         x,
			Y:         y,
			Longitude: ll.Longitude[row][col],
			Latitude:  ll.Latitude[row][col],
		}
	}
	return rows
}

// CreateGridCSV writes one line per pixel. Rows are marshalled one raster
// line at a time so large grids are never duplicated in memory.
func CreateGridCSV(ll *raster.LatLon, outputPath string, showProgress bool) error {
	if ll.Rows() == 0 {
		return fmt.Errorf("empty coordinate grid")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create grid CSV: %w", err)
	}
	defer file.Close()

	var progressBar *progressbar.ProgressBar
	if showProgress {
		progressBar = progressbar.Default(int64(ll.Rows()), "Writing coordinate grid")
	}

	writer := csv.NewWriter(file)
	for row := 0; row < ll.Rows(); row++ {
		chunk := gridRows(ll, row)
		if row == 0 {
			err = gocsv.MarshalCSV(&chunk, writer)
		} else {
			err = gocsv.MarshalCSVWithoutHeaders(&chunk, writer)
		}
		if err != nil {
			return fmt.Errorf("failed to write grid row %d: %w", row, err)
		}
		if progressBar != nil {
			progressBar.Add(1)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush grid CSV: %w", err)
	}
	if progressBar != nil {
		progressBar.Finish()
	}
	return nil
}
