package delivery

import (
	"fmt"

	"github.com/wilhelmuslab/icefloe-latlon/internal/batch"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
)

type BatchRequest struct {
	InputDir  string
	OutputDir string
	Workers   int
	UseCache  bool
	GridCSV   bool
	QuickLook bool
}

// RunBatch fills unset request fields from the environment and runs the
// batch over the input directory.
func RunBatch(req BatchRequest) (*batch.Report, error) {
	opts := batch.Options{
		InputDir:       req.InputDir,
		OutputDir:      req.OutputDir,
		Workers:        req.Workers,
		WriteGridCSV:   req.GridCSV,
		WriteQuickLook: req.QuickLook,
		ShowProgress:   true,
	}
	if opts.OutputDir == "" {
		opts.OutputDir = properties.OutputDir()
	}
	if opts.Workers <= 0 {
		opts.Workers = properties.BatchWorkers()
	}
	if req.UseCache {
		opts.CacheDir = properties.CacheDir()
	}

	fmt.Printf("Processing rasters from %s with %d workers\n", opts.InputDir, opts.Workers)
	report, err := batch.Run(opts)
	if report != nil {
		fmt.Printf("Processed %d rasters (%d from cache, %d failed). Summary at %s/%s\n",
			len(report.Summaries), report.Cached, len(report.Failed), opts.OutputDir, batch.SummaryFileName)
	}
	return report, err
}
