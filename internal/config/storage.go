package config

import (
	"os"
	"path/filepath"
)

// DefaultStoragePath picks where the task file lives when nothing
// configures it, preferring a cloud-synced folder so the list follows
// the user between machines:
//  1. $OneDrive (set by the Windows OneDrive client)
//  2. ~/Dropbox, then ~/OneDrive, if the directory exists
//  3. fallbackDir
func DefaultStoragePath(filename, fallbackDir string) string {
	return storagePath(filename, fallbackDir, os.Getenv, os.UserHomeDir)
}

func storagePath(filename, fallbackDir string, getenv func(string) string, homeDir func() (string, error)) string {
	if onedrive := getenv("OneDrive"); onedrive != "" {
		return filepath.Join(onedrive, filename)
	}

	if home, err := homeDir(); err == nil && home != "" {
		for _, synced := range []string{"Dropbox", "OneDrive"} {
			dir := filepath.Join(home, synced)
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				return filepath.Join(dir, filename)
			}
		}
	}

	return filepath.Join(fallbackDir, filename)
}
