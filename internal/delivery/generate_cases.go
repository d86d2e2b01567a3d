package delivery

import (
	"fmt"

	"github.com/wilhelmuslab/icefloe-latlon/internal/cases"
)

// GenerateCases writes the case description table. casesFile may be empty
// to use the built-in regions.
func GenerateCases(casesFile, csvPath, geojsonPath string) ([]cases.Description, error) {
	caseList := cases.DefaultCases()
	if casesFile != "" {
		loaded, err := cases.LoadCases(casesFile)
		if err != nil {
			return nil, err
		}
		caseList = loaded
		fmt.Printf("Loaded %d cases from %s\n", len(caseList), casesFile)
	}

	descriptions, err := cases.Generate(caseList, csvPath, geojsonPath)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Case descriptions successfully saved to %s.\n", csvPath)
	if geojsonPath != "" {
		fmt.Printf("Case boxes successfully saved to %s.\n", geojsonPath)
	}
	return descriptions, nil
}
