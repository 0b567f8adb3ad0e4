package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lon/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/lon"
	projectConfigDir = ".lon"
	configFileName   = "config.yaml"
)

// LoadConfig layers the user and project configuration files over the
// defaults. Missing files are skipped; malformed ones are an error.
func LoadConfig() (LonConfig, error) {
	config := GetDefaultConfig()

	layers := []struct {
		name string
		path func() (string, error)
	}{
		{name: "user", path: getUserConfigPath},
		{name: "project", path: getProjectConfigPath},
	}

	for _, layer := range layers {
		path, err := layer.path()
		if err != nil {
			logging.Warn("Config", "could not determine %s config path: %v", layer.name, err)
			continue
		}
		config, err = applyConfigFile(config, path)
		if err != nil {
			return LonConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
	}

	return config, Validate(config)
}

// LoadConfigFromDir loads defaults plus a single config.yaml from dir,
// ignoring the user and project layers.
func LoadConfigFromDir(dir string) (LonConfig, error) {
	path := filepath.Join(dir, configFileName)
	config, err := applyConfigFile(GetDefaultConfig(), path)
	if err != nil {
		return LonConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, Validate(config)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// applyConfigFile decodes filePath on top of base, so keys absent from the
// file keep their current value.
func applyConfigFile(base LonConfig, filePath string) (LonConfig, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return LonConfig{}, err
	}

	config := base
	if err := yaml.Unmarshal(data, &config); err != nil {
		return LonConfig{}, err
	}
	logging.Debug("Config", "applied %s", filePath)
	return config, nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
