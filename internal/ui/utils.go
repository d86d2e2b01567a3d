package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wilhelmuslab/icefloe-latlon/internal/cases"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

var stdin = bufio.NewReader(os.Stdin)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	PrintInfo(prompt)
	input, _ := stdin.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	input := ReadString(prompt)
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}

	return value, nil
}

// ReadFloat reads a float within [min, max].
func ReadFloat(prompt string, min, max float64) (float64, error) {
	input := ReadString(prompt)
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %g and %g", min, max)
	}
	return value, nil
}

// ReadDate reads a date from stdin with validation
func ReadDate(prompt string) (cases.Date, error) {
	input := ReadString(prompt)
	date, err := cases.ParseDate(input)
	if err != nil {
		return cases.Date{}, fmt.Errorf("invalid date format: %s. Please use YYYY-MM-DD", input)
	}
	return date, nil
}

// ReadYesNo returns def on empty input.
func ReadYesNo(prompt string, def bool) bool {
	switch strings.ToLower(ReadString(prompt)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// ReadPathOr returns def when the user just presses enter.
func ReadPathOr(prompt, def string) string {
	if input := ReadString(fmt.Sprintf("%s [%s]: ", prompt, def)); input != "" {
		return input
	}
	return def
}

// CreateResultDirectory creates the result directory under the output dir.
func CreateResultDirectory(outputDir, name string) (string, error) {
	resultPath := fmt.Sprintf("%s/%s", outputDir, name)
	err := os.MkdirAll(resultPath, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}
	return resultPath, nil
}
