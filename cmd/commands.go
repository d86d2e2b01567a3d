package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wilhelmuslab/icefloe-latlon/internal/delivery"
	"github.com/wilhelmuslab/icefloe-latlon/internal/properties"
	"github.com/wilhelmuslab/icefloe-latlon/internal/ui"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "icefloe-latlon",
		Short:         "Per-pixel lon/lat grids for sea-ice rasters and case fixture generation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			runMenu()
		},
	}
	root.AddCommand(newLatLonCommand(), newCasesCommand(), newBatchCommand(), newMenuCommand())
	return root
}

func runMenu() {
	printBanner()
	ui.ShowMenu()
}

func newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runMenu()
		},
	}
}

func newLatLonCommand() *cobra.Command {
	var csvPath, pngPath string
	cmd := &cobra.Command{
		Use:   "latlon <raster>",
		Short: "Derive the longitude/latitude of every pixel centre of a GeoTIFF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := delivery.DeriveLatLon(args[0], csvPath, pngPath, csvPath != "")
			if err != nil {
				return err
			}
			ui.PrintLatLonSummary(ll, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the full grid to this CSV file")
	cmd.Flags().StringVar(&pngPath, "png", "", "render a quick-look image to this PNG file")
	return cmd
}

func newCasesCommand() *cobra.Command {
	var casesFile, outPath, geojsonPath string
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Write the test case description table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptions, err := delivery.GenerateCases(casesFile, outPath, geojsonPath)
			if err != nil {
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("%d case descriptions written.", len(descriptions)))
			return nil
		},
	}
	cmd.Flags().StringVar(&casesFile, "cases", properties.CasesFile(), "YAML case table, built-in regions when empty")
	cmd.Flags().StringVarP(&outPath, "out", "o", properties.CaseDescriptionsPath(), "output CSV path")
	cmd.Flags().StringVar(&geojsonPath, "geojson", "", "also write the case boxes as GeoJSON")
	return cmd
}

func newBatchCommand() *cobra.Command {
	var req delivery.BatchRequest
	var noCache bool
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Derive lon/lat grids for every GeoTIFF in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.InputDir = args[0]
			req.UseCache = !noCache
			_, err := delivery.RunBatch(req)
			return err
		},
	}
	cmd.Flags().StringVarP(&req.OutputDir, "out", "o", properties.OutputDir(), "output folder")
	cmd.Flags().IntVarP(&req.Workers, "workers", "w", properties.BatchWorkers(), "number of concurrent rasters")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "reprocess rasters seen before")
	cmd.Flags().BoolVar(&req.GridCSV, "csv", false, "write the full grid of each raster as CSV")
	cmd.Flags().BoolVar(&req.QuickLook, "png", true, "render a quick-look image per raster")
	return cmd
}
