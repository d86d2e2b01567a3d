package ui

import (
	"fmt"
	"os"
)

type menuOption struct {
	title   string
	handler func()
}

// ShowMenu displays the main menu and handles user input
func ShowMenu() {
	menuOptions := []menuOption{
		{"Derive per-pixel longitude/latitude for a raster", DeriveLatLon},
		{"Run lat/lon derivation over a folder of rasters", RunBatch},
		{"Generate the test case description table", GenerateCases},
		{"Describe a single case box", DescribeCase},
		{"View the list of available rasters", func() { ListRasters() }},
		{"Exit the application", func() { fmt.Println("Exiting..."); os.Exit(0) }},
	}

	for {
		fmt.Println("\033[34m===================\033[0m")
		for i, opt := range menuOptions {
			fmt.Printf("\033[34m%d. %s\033[0m\n", i+1, opt.title)
		}

		choice, err := ReadInt("Please enter your choice: ", 1, len(menuOptions))
		if err != nil {
			PrintError(err.Error())
			continue
		}

		menuOptions[choice-1].handler()
	}
}
