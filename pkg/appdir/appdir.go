package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "hb"

// Dirs holds the per-user locations hb reads and writes
type Dirs struct {
	ConfigPath string
	CachePath  string
}

// New resolves XDG-compliant paths for the current user
func New() (*Dirs, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}
	cachePath, err := getCacheRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine cache path: %w", err)
	}

	return &Dirs{
		ConfigPath: configPath,
		CachePath:  cachePath,
	}, nil
}

func getConfigPath() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName+"-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

func getCacheRoot() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, appName, "cache"), nil
	}

	return filepath.Join(homeDir, ".cache", appName), nil
}

// ConfigDir returns the directory holding the config file
func (d *Dirs) ConfigDir() string {
	return filepath.Dir(d.ConfigPath)
}

// GetCachePath returns the full path for a cached file
func (d *Dirs) GetCachePath(filename string) string {
	return filepath.Join(d.CachePath, filename)
}

// ConfigExists reports whether a config file has been written
func (d *Dirs) ConfigExists() bool {
	info, err := os.Stat(d.ConfigPath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Initialize creates the config and cache directories if they don't exist
func (d *Dirs) Initialize() error {
	for _, dir := range []string{d.ConfigDir(), d.CachePath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CleanCache removes all files in the cache directory
func (d *Dirs) CleanCache() error {
	entries, err := os.ReadDir(d.CachePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(d.CachePath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
