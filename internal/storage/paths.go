package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessrules"

// baseDataDir returns the per-user application data root of the platform:
// ~/Library/Application Support on macOS, %APPDATA% on Windows and
// $XDG_DATA_HOME (default ~/.local/share) elsewhere.
func baseDataDir() (string, error) {
	var env string
	var fallback []string

	switch runtime.GOOS {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	default:
		env, fallback = "XDG_DATA_HOME", []string{".local", "share"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// ensureDir joins the elements below the application data directory and
// creates the result.
func ensureDir(elem ...string) (string, error) {
	base, err := baseDataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(append([]string{base, appName}, elem...)...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDataDir returns the application data directory, creating it if needed.
func GetDataDir() (string, error) {
	return ensureDir()
}

// GetDatabaseDir returns the directory holding the perft result database.
func GetDatabaseDir() (string, error) {
	return ensureDir("perft")
}
