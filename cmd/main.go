package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/wilhelmuslab/icefloe-latlon/internal/notification"
	"github.com/wilhelmuslab/icefloe-latlon/internal/ui"
)

func printBanner() {
	figure1 := figure.NewFigure("IceFloe", "isometric1", true)
	figure2 := figure.NewFigure("LatLon", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func recoverPanic() {
	r := recover()
	if r == nil {
		return
	}

	pc, file, line, ok := runtime.Caller(3)
	location := "Unknown location"
	if ok {
		fn := runtime.FuncForPC(pc)
		location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
	}

	fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
	fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
	fmt.Printf("\033[31mExiting...\033[0m\n")

	errMessage := fmt.Sprintf("IceFloe LatLon panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, debug.Stack())
	if err := notification.SendDiscordErrorNotification(errMessage); err != nil {
		fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
	}
	os.Exit(2)
}

func loadEnv() {
	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func main() {
	defer recoverPanic()

	loadEnv()
	godal.RegisterAll()

	if err := newRootCommand().Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
