package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A missing config file
// yields the defaults, keys present in the file override them.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	out := defaultConfig()
	out.configFs = fsys
	out.configurationDir = path

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return nil, wrapConfigError(err)
	}

	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, wrapConfigError(fmt.Errorf("%s: %w", ConfigurationName, err))
	}
	if err := out.Validate(); err != nil {
		return nil, wrapConfigError(fmt.Errorf("%s: %w", ConfigurationName, err))
	}
	return out, nil
}
