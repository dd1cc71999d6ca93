package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig     = ".config"
	appName       = "swimlight"
	dbName        = "swimlight.db"
	logName       = "swimlight.log"
	dateCacheName = "workout_dates.json"

	// HomeEnv relocates every swimlight file, e.g. for a throwaway demo store.
	HomeEnv = "SWIMLIGHT_HOME"
)

// Dir is $SWIMLIGHT_HOME when set, else ~/.config/swimlight.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

func DB() (string, error) { return file(dbName) }

func Log() (string, error) { return file(logName) }

// DateCache is the JSON list of days that had a swim workout.
func DateCache() (string, error) { return file(dateCacheName) }

func file(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
