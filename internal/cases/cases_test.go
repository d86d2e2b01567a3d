package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	godal.RegisterAll()
	os.Exit(m.Run())
}

func greenlandSea() Case {
	return Case{Region: "greenland_sea", CenterLat: 77.1718, CenterLon: -13.8062, WidthKm: 50, Date: MustDate("2018-07-12")}
}

func TestDescribeGreenlandSea(t *testing.T) {
	p, err := NewProjector()
	require.NoError(t, err)
	defer p.Close()

	d, err := Describe(p, greenlandSea())
	require.NoError(t, err)

	assert.Equal(t, "greenland_sea-50km-20180712", d.CaseName)
	assert.Equal(t, "greenland_sea", d.Location)
	assert.Equal(t, "2018-07-12", d.StartDate.String())
	assert.Equal(t, "2018-07-13", d.EndDate.String())
	assert.Equal(t, int64(50000), d.RightX-d.LeftX)
	assert.Equal(t, int64(50000), d.TopY-d.LowerY)

	// the box straddles the centre
	assert.InDelta(t, 77.1718, (d.TopLeftLat+d.LowerRightLat)/2, 0.2)
	assert.InDelta(t, -13.8062, (d.TopLeftLon+d.LowerRightLon)/2, 0.5)
	assert.Len(t, d.Box, 5)
	assert.Equal(t, d.Box[0], d.Box[4])
}

func TestDescribeCornersRoundTrip(t *testing.T) {
	p, err := NewProjector()
	require.NoError(t, err)
	defer p.Close()

	d, err := Describe(p, greenlandSea())
	require.NoError(t, err)

	x, y, err := p.toPlanar.TransformPoint(d.TopLeftLon, d.TopLeftLat)
	require.NoError(t, err)
	// 1e-5 degrees is at most a couple of metres
	assert.InDelta(t, float64(d.LeftX), x, 3)
	assert.InDelta(t, float64(d.TopY), y, 3)
}

func TestDescribeRejectsInvalidCase(t *testing.T) {
	p, err := NewProjector()
	require.NoError(t, err)
	defer p.Close()

	c := greenlandSea()
	c.WidthKm = 0
	_, err = Describe(p, c)
	assert.Error(t, err)
}

func TestDefaultCases(t *testing.T) {
	cases := DefaultCases()
	require.Len(t, cases, 9)

	widths := []int{50, 100, 200, 50, 100, 200, 50, 100, 200}
	for i, c := range cases {
		assert.NoError(t, c.Validate())
		assert.Equal(t, widths[i], c.WidthKm, c.Region)
	}
	assert.Equal(t, "greenland_sea", cases[0].Region)
	assert.Equal(t, "baffin_bay", cases[8].Region)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 77.17181, roundDegrees(77.171814))
	assert.Equal(t, -13.80621, roundDegrees(-13.8062149))
	assert.Equal(t, int64(-1214568), roundMetres(-1214567.6))
	assert.Equal(t, int64(2), roundMetres(2.5))
}

func TestLoadCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- region: greenland_sea
  center_lat: 77.1718
  center_lon: -13.8062
  width_km: 50
  date: "2018-07-12"
- region: hudson_bay
  center_lat: 60.7905
  center_lon: -84.6631
  width_km: 100
  date: "2006-05-13"
`), 0o644))

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, greenlandSea(), cases[0])
	assert.Equal(t, 100, cases[1].WidthKm)
}

func TestLoadCasesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCases(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badDate := filepath.Join(dir, "bad_date.yaml")
	require.NoError(t, os.WriteFile(badDate, []byte("- region: x\n  center_lat: 70\n  center_lon: 10\n  width_km: 5\n  date: \"12/07/2018\"\n"), 0o644))
	_, err = LoadCases(badDate)
	assert.Error(t, err)

	noWidth := filepath.Join(dir, "no_width.yaml")
	require.NoError(t, os.WriteFile(noWidth, []byte("- region: x\n  center_lat: 70\n  center_lon: 10\n  date: \"2018-07-12\"\n"), 0o644))
	_, err = LoadCases(noWidth)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("[]\n"), 0o644))
	_, err = LoadCases(empty)
	assert.Error(t, err)
}
