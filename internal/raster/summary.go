package raster

import (
	"github.com/paulmach/orb"
)

// Summary is the per-raster record written by batch runs.
type Summary struct {
	Path        string  `csv:"path" json:"path"`
	CRS         string  `csv:"crs" json:"crs"`
	Rows        int     `csv:"rows" json:"rows"`
	Cols        int     `csv:"cols" json:"cols"`
	MinLon      float64 `csv:"min_lon" json:"min_lon"`
	MinLat      float64 `csv:"min_lat" json:"min_lat"`
	MaxLon      float64 `csv:"max_lon" json:"max_lon"`
	MaxLat      float64 `csv:"max_lat" json:"max_lat"`
	AxisAligned bool    `csv:"axis_aligned" json:"axis_aligned"`
}

// Bound is the lon/lat envelope of all pixel centres.
func (ll *LatLon) Bound() orb.Bound {
	if ll.Rows() == 0 || ll.Cols() == 0 {
		return orb.Bound{}
	}
	first := orb.Point{ll.Longitude[0][0], ll.Latitude[0][0]}
	b := orb.Bound{Min: first, Max: first}
	for row := range ll.Latitude {
		for col := range ll.Latitude[row] {
			b = b.Extend(orb.Point{ll.Longitude[row][col], ll.Latitude[row][col]})
		}
	}
	return b
}

func (ll *LatLon) Summarize(path string) Summary {
	b := ll.Bound()
	return Summary{
		Path:        path,
		CRS:         ll.CRS,
		Rows:        ll.Rows(),
		Cols:        ll.Cols(),
		MinLon:      b.Min.Lon(),
		MinLat:      b.Min.Lat(),
		MaxLon:      b.Max.Lon(),
		MaxLat:      b.Max.Lat(),
		AxisAligned: ll.AxisAligned,
	}
}
