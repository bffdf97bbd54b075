package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var DEV bool

func SetDevMode(dev bool) {
	DEV = dev
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", errors.New("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create config directory %s", configDir)
	}

	return configDir, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}
