package ui

import (
	"fmt"

	"github.com/wilhelmuslab/icefloe-latlon/internal/cases"
	"github.com/wilhelmuslab/icefloe-latlon/internal/delivery"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
)

// GenerateCases handles the UI for writing the case description table
func GenerateCases() {
	casesFile := properties.CasesFile()
	if casesFile == "" {
		PrintWarning("CASES_FILE is not set, the built-in regions will be used.")
	}
	csvPath := ReadPathOr("Enter the output CSV path", properties.CaseDescriptionsPath())

	var geojsonPath string
	if ReadYesNo("Also write the boxes as GeoJSON? (y/N): ", false) {
		geojsonPath = ReadPathOr("Enter the output GeoJSON path", csvPath+".geojson")
	}

	descriptions, err := delivery.GenerateCases(casesFile, csvPath, geojsonPath)
	if err != nil {
		PrintError(fmt.Sprintf("Error generating cases: %s", err.Error()))
		return
	}
	PrintSuccess(fmt.Sprintf("%d case descriptions written.", len(descriptions)))
}

// DescribeCase prints the box of a single case typed in by the user
func DescribeCase() {
	region := ReadString("Enter the region name: ")
	if region == "" {
		PrintError("region cannot be empty")
		return
	}
	lat, err := ReadFloat("Enter the center latitude: ", -90, 90)
	if err != nil {
		PrintError(err.Error())
		return
	}
	lon, err := ReadFloat("Enter the center longitude: ", -180, 180)
	if err != nil {
		PrintError(err.Error())
		return
	}
	width, err := ReadInt("Enter the box width in km: ", 1, 10000)
	if err != nil {
		PrintError(err.Error())
		return
	}
	date, err := ReadDate("Enter the date (YYYY-MM-DD): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	projector, err := cases.NewProjector()
	if err != nil {
		PrintError(err.Error())
		return
	}
	defer projector.Close()

	d, err := cases.Describe(projector, cases.Case{Region: region, CenterLat: lat, CenterLon: lon, WidthKm: width, Date: date})
	if err != nil {
		PrintError(err.Error())
		return
	}
	PrintSuccess(fmt.Sprintf("%s\nTop left: %.5f, %.5f\nLower right: %.5f, %.5f\nRange: %s to %s",
		d.CaseName, d.TopLeftLat, d.TopLeftLon, d.LowerRightLat, d.LowerRightLon, d.StartDate, d.EndDate))
}
