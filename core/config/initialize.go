package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize makes sure the fastbash home and scripts directory exist, writes
// the default config file if there is none and loads the result.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	scriptsDir := filepath.Join(dir, ScriptsDirName)
	if err := fsys.MkdirAll(scriptsDir, 0755); err != nil {
		return nil, wrapConfigError(fmt.Errorf("couldn't create scripts directory: %w", err))
	}

	configPath := filepath.Join(dir, ConfigurationName)
	_, err := fsys.Stat(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
			return nil, wrapConfigError(fmt.Errorf("couldn't write default config: %w", err))
		}
		logger.Printf("Wrote default configuration to %s", configPath)
	case err != nil:
		return nil, wrapConfigError(err)
	}

	return Load(fsys, dir)
}
