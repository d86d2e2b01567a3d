package cases

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/wilhelmuslab/icefloe-latlon/internal/geo"
)

// Description is one row of the case table.
type Description struct {
	CaseName      string  `csv:"case_name"`
	Location      string  `csv:"location"`
	CenterLat     float64 `csv:"center_lat"`
	CenterLon     float64 `csv:"center_lon"`
	TopLeftLat    float64 `csv:"top_left_lat"`
	TopLeftLon    float64 `csv:"top_left_lon"`
	LowerRightLat float64 `csv:"lower_right_lat"`
	LowerRightLon float64 `csv:"lower_right_lon"`
	LeftX         int64   `csv:"left_x"`
	RightX        int64   `csv:"right_x"`
	LowerY        int64   `csv:"lower_y"`
	TopY          int64   `csv:"top_y"`
	StartDate     Date    `csv:"startdate"`
	EndDate       Date    `csv:"enddate"`

	// Box is the planar square projected back to lon/lat, closed ring
	// starting at the top-left corner.
	Box orb.Ring `csv:"-"`
}

// Projector converts between WGS84 and polar stereographic north.
type Projector struct {
	toPlanar     *geo.Transformer
	toGeographic *geo.Transformer
}

func NewProjector() (*Projector, error) {
	toPlanar, err := geo.NewEPSGTransformer(geo.EPSGWGS84, geo.EPSGPolarStereoNorth)
	if err != nil {
		return nil, err
	}
	toGeographic, err := geo.NewEPSGTransformer(geo.EPSGPolarStereoNorth, geo.EPSGWGS84)
	if err != nil {
		toPlanar.Close()
		return nil, err
	}
	return &Projector{toPlanar: toPlanar, toGeographic: toGeographic}, nil
}

func (p *Projector) Close() {
	p.toPlanar.Close()
	p.toGeographic.Close()
}

// CaseName is region-<width>km-<YYYYMMDD>.
func CaseName(c Case) string {
	return fmt.Sprintf("%s-%dkm-%s", c.Region, c.WidthKm, c.Date.Compact())
}

// Describe builds the bounding box of a case: a square of WidthKm centred on
// the case centre in planar coordinates, with corners mapped back to WGS84.
func Describe(p *Projector, c Case) (Description, error) {
	if err := c.Validate(); err != nil {
		return Description{}, err
	}

	x0, y0, err := p.toPlanar.TransformPoint(c.CenterLon, c.CenterLat)
	if err != nil {
		return Description{}, fmt.Errorf("%s: project centre: %w", c.Region, err)
	}

	half := float64(c.WidthKm) / 2 * 1e3
	leftX, rightX := x0-half, x0+half
	lowerY, topY := y0-half, y0+half

	// top-left, top-right, lower-right, lower-left
	lons := []float64{leftX, rightX, rightX, leftX}
	lats := []float64{topY, topY, lowerY, lowerY}
	if err := p.toGeographic.Transform(lons, lats); err != nil {
		return Description{}, fmt.Errorf("%s: project corners: %w", c.Region, err)
	}

	box := make(orb.Ring, 0, 5)
	for i := range lons {
		box = append(box, orb.Point{lons[i], lats[i]})
	}
	box = append(box, box[0])

	return Description{
		CaseName:      CaseName(c),
		Location:      c.Region,
		CenterLat:     c.CenterLat,
		CenterLon:     c.CenterLon,
		TopLeftLat:    roundDegrees(lats[0]),
		TopLeftLon:    roundDegrees(lons[0]),
		LowerRightLat: roundDegrees(lats[2]),
		LowerRightLon: roundDegrees(lons[2]),
		LeftX:         roundMetres(leftX),
		RightX:        roundMetres(rightX),
		LowerY:        roundMetres(lowerY),
		TopY:          roundMetres(topY),
		StartDate:     c.Date,
		EndDate:       c.Date.NextDay(),
		Box:           box,
	}, nil
}

// DescribeAll keeps the order of cases.
func DescribeAll(p *Projector, cases []Case) ([]Description, error) {
	descriptions := make([]Description, 0, len(cases))
	for _, c := range cases {
		d, err := Describe(p, c)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, d)
	}
	return descriptions, nil
}

// Half-to-even, like numpy.round.
func roundDegrees(v float64) float64 {
	return math.RoundToEven(v*1e5) / 1e5
}

func roundMetres(v float64) int64 {
	return int64(math.RoundToEven(v))
}
