package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilhelmuslab/icefloe-latlon/internal/geo"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
	"github.com/wilhelmuslab/icefloe-latlon/internal/testutil"
)

func TestMain(m *testing.M) {
	godal.RegisterAll()
	os.Unsetenv("DISCORD_ERROR_NOTIFICATION_URL")
	os.Unsetenv("DISCORD_SUCCESS_NOTIFICATION_URL")
	os.Exit(m.Run())
}

func writeScenes(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2018"), 0o755))
	testutil.WriteGeoTIFFAt(t, filepath.Join(dir, "a.tif"), 3, 4, testutil.PolarStereoTransform, geo.EPSGPolarStereoNorth)
	testutil.WriteGeoTIFFAt(t, filepath.Join(dir, "2018", "a.tiff"), 2, 2, testutil.PolarStereoTransform, geo.EPSGPolarStereoNorth)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a raster"), 0o644))
	return dir
}

func TestFindRasters(t *testing.T) {
	dir := writeScenes(t)

	files, err := FindRasters(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "2018", "a.tiff"), filepath.Join(dir, "a.tif")}, files)

	_, err = FindRasters(filepath.Join(dir, "a.tif"))
	assert.Error(t, err)
}

func TestOutputBaseName(t *testing.T) {
	dir := filepath.Join("data", "scenes")
	assert.Equal(t, "a", outputBaseName(dir, filepath.Join(dir, "a.tif")))
	assert.Equal(t, "2018_a", outputBaseName(dir, filepath.Join(dir, "2018", "a.tiff")))
}

func TestRun(t *testing.T) {
	in := writeScenes(t)
	out := filepath.Join(t.TempDir(), "out")
	opts := Options{
		InputDir:       in,
		OutputDir:      out,
		Workers:        2,
		CacheDir:       filepath.Join(t.TempDir(), "cache"),
		WriteGridCSV:   true,
		WriteQuickLook: true,
	}

	report, err := Run(opts)
	require.NoError(t, err)
	require.Len(t, report.Summaries, 2)
	assert.Equal(t, 0, report.Cached)
	assert.Empty(t, report.Failed)

	assert.FileExists(t, filepath.Join(out, "a.latlon.csv"))
	assert.FileExists(t, filepath.Join(out, "a.quicklook.png"))
	assert.FileExists(t, filepath.Join(out, "2018_a.latlon.csv"))

	file, err := os.Open(filepath.Join(out, SummaryFileName))
	require.NoError(t, err)
	defer file.Close()
	var rows []raster.Summary
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "EPSG:3413", rows[0].CRS)

	again, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Cached)
	assert.Equal(t, report.Summaries, again.Summaries)
}

func TestRunReportsFailuresWithoutStopping(t *testing.T) {
	in := writeScenes(t)
	testutil.WriteGeoTIFFAt(t, filepath.Join(in, "bare.tif"), 2, 2, testutil.PolarStereoTransform, 0)

	report, err := Run(Options{InputDir: in, OutputDir: t.TempDir(), Workers: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, raster.ErrNoSpatialRef)
	assert.Len(t, report.Summaries, 2)
	assert.Contains(t, report.Failed, filepath.Join(in, "bare.tif"))
}

func TestRunEmptyDir(t *testing.T) {
	_, err := Run(Options{InputDir: t.TempDir(), OutputDir: t.TempDir()})
	assert.Error(t, err)
}

func TestOutputBaseNamesKeepsClashingRastersApart(t *testing.T) {
	dir := filepath.Join("data", "scenes")
	paths := []string{
		filepath.Join(dir, "2018", "a.tif"),
		filepath.Join(dir, "2018_a.tif"),
		filepath.Join(dir, "other.tif"),
		filepath.Join(dir, "scene.TIF"),
		filepath.Join(dir, "scene.tif"),
		filepath.Join(dir, "scene.tiff"),
	}

	names := outputBaseNames(dir, paths)
	assert.Equal(t, map[string]string{
		paths[0]: "2018_a_tif",
		paths[1]: "2018_a_tif_2",
		paths[2]: "other",
		paths[3]: "scene_TIF",
		paths[4]: "scene_tif",
		paths[5]: "scene_tiff",
	}, names)
}

func TestRunSameNameDifferentExtension(t *testing.T) {
	in := t.TempDir()
	testutil.WriteGeoTIFFAt(t, filepath.Join(in, "scene.tif"), 2, 2, testutil.PolarStereoTransform, geo.EPSGPolarStereoNorth)
	testutil.WriteGeoTIFFAt(t, filepath.Join(in, "scene.tiff"), 3, 2, testutil.PolarStereoTransform, geo.EPSGPolarStereoNorth)
	out := t.TempDir()

	report, err := Run(Options{InputDir: in, OutputDir: out, Workers: 2, WriteGridCSV: true})
	require.NoError(t, err)
	assert.Len(t, report.Summaries, 2)
	assert.FileExists(t, filepath.Join(out, "scene_tif.latlon.csv"))
	assert.FileExists(t, filepath.Join(out, "scene_tiff.latlon.csv"))
	assert.NoFileExists(t, filepath.Join(out, "scene.latlon.csv"))
}

func TestRunCacheFollowsRequestedExports(t *testing.T) {
	in := writeScenes(t)
	out := filepath.Join(t.TempDir(), "out")
	opts := Options{
		InputDir:  in,
		OutputDir: out,
		Workers:   2,
		CacheDir:  filepath.Join(t.TempDir(), "cache"),
	}

	first, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Cached)
	assert.NoFileExists(t, filepath.Join(out, "a.latlon.csv"))

	opts.WriteGridCSV = true
	withCSV, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, withCSV.Cached)
	assert.FileExists(t, filepath.Join(out, "a.latlon.csv"))
	assert.FileExists(t, filepath.Join(out, "2018_a.latlon.csv"))

	again, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Cached)

	require.NoError(t, os.Remove(filepath.Join(out, "a.latlon.csv")))
	rebuilt, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 1, rebuilt.Cached)
	assert.FileExists(t, filepath.Join(out, "a.latlon.csv"))

	opts.OutputDir = filepath.Join(t.TempDir(), "other")
	moved, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Cached)
	assert.FileExists(t, filepath.Join(opts.OutputDir, "a.latlon.csv"))
}
