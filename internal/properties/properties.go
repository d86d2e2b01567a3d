package properties

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultCaseDescriptionsPath = "test_case_descriptions.csv"
	defaultBatchWorkers         = 4
)

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

// OutputDir is where grid exports land when no explicit path is given.
func OutputDir() string {
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(RootPath(), "data", "result")
}

// CasesFile points to a YAML case table. Empty means the built-in table.
func CasesFile() string {
	return os.Getenv("CASES_FILE")
}

func CaseDescriptionsPath() string {
	if path := os.Getenv("CASE_DESCRIPTIONS_PATH"); path != "" {
		return path
	}
	return defaultCaseDescriptionsPath
}

func BatchWorkers() int {
	n, err := strconv.Atoi(os.Getenv("BATCH_WORKERS"))
	if err != nil || n <= 0 {
		return defaultBatchWorkers
	}
	return n
}

// ImagesDir holds the rasters offered by the interactive menu.
func ImagesDir() string {
	return filepath.Join(RootPath(), "data", "images")
}

func CacheDir() string {
	return filepath.Join(RootPath(), "data", "cache")
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}

func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
