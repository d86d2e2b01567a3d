package cases

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	return nil
}

// WriteDescriptions writes the case table with a header row.
func WriteDescriptions(path string, descriptions []Description) error {
	if len(descriptions) == 0 {
		return fmt.Errorf("no case descriptions to save")
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create case descriptions file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&descriptions, file); err != nil {
		return fmt.Errorf("failed to save case descriptions to file: %w", err)
	}
	return nil
}

func ReadDescriptions(path string) ([]Description, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open case descriptions file: %w", err)
	}
	defer file.Close()

	var descriptions []Description
	if err := gocsv.UnmarshalFile(file, &descriptions); err != nil {
		return nil, fmt.Errorf("failed to read case descriptions: %w", err)
	}
	return descriptions, nil
}

// WriteGeoJSON writes one polygon feature per case.
func WriteGeoJSON(path string, descriptions []Description) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	fc := geojson.NewFeatureCollection()
	for _, d := range descriptions {
		feature := geojson.NewFeature(orb.Polygon{d.Box})
		feature.Properties["case_name"] = d.CaseName
		feature.Properties["location"] = d.Location
		feature.Properties["startdate"] = d.StartDate.String()
		feature.Properties["enddate"] = d.EndDate.String()
		feature.Properties["left_x"] = d.LeftX
		feature.Properties["right_x"] = d.RightX
		feature.Properties["lower_y"] = d.LowerY
		feature.Properties["top_y"] = d.TopY
		fc.Append(feature)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write GeoJSON file: %w", err)
	}
	return nil
}

// Generate describes cases and writes the CSV table to csvPath. A non-empty
// geojsonPath also writes the boxes as GeoJSON.
func Generate(cases []Case, csvPath, geojsonPath string) ([]Description, error) {
	p, err := NewProjector()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	descriptions, err := DescribeAll(p, cases)
	if err != nil {
		return nil, err
	}
	if err := WriteDescriptions(csvPath, descriptions); err != nil {
		return nil, err
	}
	if geojsonPath != "" {
		if err := WriteGeoJSON(geojsonPath, descriptions); err != nil {
			return nil, err
		}
	}
	return descriptions, nil
}
