package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFileName = "serviceAccount.json"

// LoadCredentials reads the Google service-account JSON. When path is empty,
// serviceAccount.json is searched for in the current directory and then the
// user's home directory.
func LoadCredentials(path string) ([]byte, error) {
	if path == "" {
		found, err := findCredentialsFile()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}

	return data, nil
}

func findCredentialsFile() (string, error) {
	if _, err := os.Stat(credentialsFileName); err == nil {
		return credentialsFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, credentialsFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("service account file not found in current directory or home directory")
}
