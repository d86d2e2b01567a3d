package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gammazero/workerpool"
	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/wilhelmuslab/icefloe-latlon/internal/cache"
	"github.com/wilhelmuslab/icefloe-latlon/internal/notification"
	"github.com/wilhelmuslab/icefloe-latlon/internal/raster"
	"github.com/wilhelmuslab/icefloe-latlon/internal/utils"
	"github.com/wilhelmuslab/icefloe-latlon/output"
)

const SummaryFileName = "summary.csv"

type Options struct {
	InputDir  string
	OutputDir string
	Workers   int
	// CacheDir enables skipping rasters that were already processed.
	CacheDir       string
	WriteGridCSV   bool
	WriteQuickLook bool
	ShowProgress   bool
}

type Report struct {
	Summaries []raster.Summary
	Cached    int
	Failed    map[string]error
}

// FindRasters lists .tif and .tiff files below dir, sorted.
func FindRasters(inputDir string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input must be a directory")
	}

	files := make([]string, 0)
	err = filepath.WalkDir(inputDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".tif" || ext == ".tiff" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// outputBaseName flattens the path relative to the input dir so rasters
// with the same name in different folders do not collide.
func outputBaseName(inputDir, path string) string {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(rel, string(filepath.Separator), "_")
}

// outputBaseNames assigns every raster a distinct base name. Rasters that
// only differ by extension keep it in their name (scene_tif, scene_TIF) and
// any remaining clash gets a numeric suffix. paths must be sorted.
func outputBaseNames(inputDir string, paths []string) map[string]string {
	count := make(map[string]int, len(paths))
	for _, p := range paths {
		count[outputBaseName(inputDir, p)]++
	}

	names := make(map[string]string, len(paths))
	used := make(map[string]bool, len(paths))
	for _, p := range paths {
		name := outputBaseName(inputDir, p)
		if count[name] > 1 {
			name += "_" + strings.TrimPrefix(filepath.Ext(p), ".")
		}
		candidate := name
		for i := 2; used[candidate]; i++ {
			candidate = fmt.Sprintf("%s_%d", name, i)
		}
		used[candidate] = true
		names[p] = candidate
	}
	return names
}

// Run derives the coordinate grid of every raster in opts.InputDir. A
// failing raster does not stop the others; failures are reported in
// Report.Failed and joined into the returned error.
func Run(opts Options) (*Report, error) {
	paths, err := FindRasters(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .tif files found in %s", opts.InputDir)
	}
	if err := os.MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	var fc *cache.FileCache[raster.Summary]
	if opts.CacheDir != "" {
		fc = cache.NewFileCache[raster.Summary](opts.CacheDir)
	}

	var progressBar *progressbar.ProgressBar
	if opts.ShowProgress {
		progressBar = progressbar.Default(int64(len(paths)), "Deriving coordinate grids")
	}

	baseNames := outputBaseNames(opts.InputDir, paths)
	summaries := make(map[string]raster.Summary)
	report := &Report{Failed: make(map[string]error)}

	wp := workerpool.New(workers)
	for _, path := range paths {
		p := path // capture range variable
		base := filepath.Join(opts.OutputDir, baseNames[p])
		wp.Submit(func() {
			summary, cached, err := processRaster(opts, fc, p, base)
			utils.ExecuteWithMutex(func() {
				if err != nil {
					report.Failed[p] = err
				} else {
					summaries[p] = summary
					if cached {
						report.Cached++
					}
				}
				if progressBar != nil {
					progressBar.Add(1)
				}
			})
		})
	}
	wp.StopWait()
	if progressBar != nil {
		progressBar.Finish()
	}

	for _, p := range utils.GetSortedKeys(summaries, true) {
		report.Summaries = append(report.Summaries, summaries[p])
	}

	if len(report.Summaries) > 0 {
		if err := writeSummary(filepath.Join(opts.OutputDir, SummaryFileName), report.Summaries); err != nil {
			return report, err
		}
	}

	runErr := report.err()
	notify(report, runErr)
	return report, runErr
}

// exportPaths lists the files a run with opts writes for base.
func exportPaths(opts Options, base string) (csvPath, pngPath string) {
	if opts.WriteGridCSV {
		csvPath = base + ".latlon.csv"
	}
	if opts.WriteQuickLook {
		pngPath = base + ".quicklook.png"
	}
	return csvPath, pngPath
}

func filesExist(paths ...string) bool {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

func processRaster(opts Options, fc *cache.FileCache[raster.Summary], path, base string) (raster.Summary, bool, error) {
	csvPath, pngPath := exportPaths(opts, base)

	// A cached summary is only reused for the same exports in the same place.
	var key string
	if fc != nil {
		k, err := fc.FileKey(path, base, opts.WriteGridCSV, opts.WriteQuickLook)
		if err == nil {
			key = k
			if summary, ok := fc.Get(key); ok && filesExist(csvPath, pngPath) {
				return summary, true, nil
			}
		}
	}

	ll, err := raster.GetLatLon(path)
	if err != nil {
		return raster.Summary{}, false, err
	}

	if csvPath != "" {
		if err := output.CreateGridCSV(ll, csvPath, false); err != nil {
			return raster.Summary{}, false, err
		}
	}
	if pngPath != "" {
		if err := output.CreateQuickLookImage(ll, pngPath); err != nil {
			return raster.Summary{}, false, err
		}
	}

	summary := ll.Summarize(path)
	if key != "" {
		if err := fc.Set(key, summary); err != nil {
			fmt.Printf("Warning: could not cache %s: %v\n", path, err)
		}
	}
	return summary, false, nil
}

func writeSummary(path string, summaries []raster.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&summaries, file); err != nil {
		return fmt.Errorf("failed to save summary to file: %w", err)
	}
	return nil
}

func (r *Report) err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, p := range utils.GetSortedKeys(r.Failed, true) {
		errs = append(errs, fmt.Errorf("%s: %w", p, r.Failed[p]))
	}
	return errors.Join(errs...)
}

func notify(report *Report, runErr error) {
	var err error
	if runErr != nil {
		err = notification.SendDiscordErrorNotification(fmt.Sprintf("Batch finished with %d failed rasters:\n%s", len(report.Failed), runErr))
	} else {
		err = notification.SendDiscordSuccessNotification(fmt.Sprintf("Batch finished: %d rasters, %d from cache", len(report.Summaries), report.Cached))
	}
	if err != nil {
		fmt.Printf("Warning: failed to send notification: %v\n", err)
	}
}
