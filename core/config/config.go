package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	ScriptsDirName    = "scripts"
	HomeDirName       = ".fastbash"

	// HomeEnv overrides the location of the fastbash home directory.
	HomeEnv = "FASTBASH_HOME"
	// EditorEnv names the editor, it takes precedence over the config file.
	EditorEnv = "EDITOR"
)

// ErrConfiguration is wrapped by every error caused by a missing or unusable
// fastbash home, scripts directory, or config file.
var ErrConfiguration = errors.New("configuration error")

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Editor           string `json:"editor" validate:"required"`
	Template         string `json:"template" validate:"required,startswith=#!"`
	DescriptionLines int    `json:"description_lines" validate:"gte=1,lte=100"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// Fs returns the filesystem the configuration was loaded from.
func (c *Configuration) Fs() afero.Fs {
	return c.fs()
}

// ScriptsDir is the absolute path of the directory holding saved scripts.
func (c *Configuration) ScriptsDir() string {
	return filepath.Join(c.configurationDir, ScriptsDirName)
}

// EditorCommand returns the editor command line, preferring $EDITOR.
func (c *Configuration) EditorCommand(getenv func(string) string) string {
	if env := strings.TrimSpace(getenv(EditorEnv)); env != "" {
		return env
	}
	return c.Editor
}

// DefaultDir resolves the fastbash home: $FASTBASH_HOME if set, otherwise
// ~/.fastbash.
func DefaultDir(getenv func(string) string) (string, error) {
	if dir := strings.TrimSpace(getenv(HomeEnv)); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", wrapConfigError(err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrapConfigError(err)
	}
	return filepath.Join(home, HomeDirName), nil
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

func wrapConfigError(err error) error {
	return &configError{err: err}
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

func (e *configError) Is(target error) bool {
	return target == ErrConfiguration
}
