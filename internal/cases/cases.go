package cases

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Case is a named region to cut a square test scene around.
type Case struct {
	Region    string  `yaml:"region"`
	CenterLat float64 `yaml:"center_lat"`
	CenterLon float64 `yaml:"center_lon"`
	WidthKm   int     `yaml:"width_km"`
	Date      Date    `yaml:"date"`
}

// Each of these scenes has distinct ice floes.
func DefaultCases() []Case {
	return []Case{
		{Region: "greenland_sea", CenterLat: 77.1718, CenterLon: -13.8062, WidthKm: 50, Date: MustDate("2018-07-12")},
		{Region: "barents_kara_seas", CenterLat: 78.9808, CenterLon: 48.8454, WidthKm: 100, Date: MustDate("2025-05-07")},
		{Region: "laptev_sea", CenterLat: 76.5526, CenterLon: 123.4811, WidthKm: 200, Date: MustDate("2023-06-13")},
		{Region: "sea_of_okhostk", CenterLat: 57.0740, CenterLon: 142.4997, WidthKm: 50, Date: MustDate("2018-04-12")},
		{Region: "east_siberian_sea", CenterLat: 72.2032, CenterLon: 172.7133, WidthKm: 100, Date: MustDate("2019-06-12")},
		{Region: "bering_chukchi_seas", CenterLat: 71.2663, CenterLon: -161.3376, WidthKm: 200, Date: MustDate("2021-03-14")},
		{Region: "beaufort_sea", CenterLat: 72.4100, CenterLon: -136.2380, WidthKm: 50, Date: MustDate("2007-06-14")},
		{Region: "hudson_bay", CenterLat: 60.7905, CenterLon: -84.6631, WidthKm: 100, Date: MustDate("2006-05-13")},
		{Region: "baffin_bay", CenterLat: 68.8493, CenterLon: -63.4067, WidthKm: 200, Date: MustDate("2006-07-04")},
	}
}

func (c Case) Validate() error {
	if c.Region == "" {
		return errors.New("region is required")
	}
	if c.CenterLat < -90 || c.CenterLat > 90 {
		return fmt.Errorf("%s: center_lat %v out of range", c.Region, c.CenterLat)
	}
	if c.CenterLon < -180 || c.CenterLon > 180 {
		return fmt.Errorf("%s: center_lon %v out of range", c.Region, c.CenterLon)
	}
	if c.WidthKm <= 0 {
		return fmt.Errorf("%s: width_km must be positive, got %d", c.Region, c.WidthKm)
	}
	if c.Date.IsZero() {
		return fmt.Errorf("%s: date is required", c.Region)
	}
	return nil
}

// LoadCases reads a YAML list of cases.
func LoadCases(path string) ([]Case, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file: %w", err)
	}

	var cases []Case
	if err := yaml.Unmarshal(rawData, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse cases file %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases found in %s", path)
	}
	for i, c := range cases {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("case %d in %s: %w", i+1, path, err)
		}
	}
	return cases, nil
}
