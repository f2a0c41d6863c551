package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Options file formats.
const (
	OptionsTOML = "toml"
	OptionsYAML = "yaml"
)

// ParseOptions decodes options from data in the given format ("toml" or
// "yaml"). Defaults are not applied.
func ParseOptions(data []byte, format string) (Options, error) {
	var o Options
	switch format {
	case OptionsTOML:
		if err := toml.Unmarshal(data, &o); err != nil {
			return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode toml options")
		}
	case OptionsYAML:
		if err := yaml.Unmarshal(data, &o); err != nil {
			return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode yaml options")
		}
	default:
		return Options{}, errs.New(errs.ErrCodeInvalidFormat, "unknown options format %q (must be 'toml' or 'yaml')", format)
	}
	return o, nil
}

// LoadOptionsFile reads options from a .toml, .yaml or .yml file.
func LoadOptionsFile(path string) (Options, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = OptionsTOML
	case ".yaml", ".yml":
		format = OptionsYAML
	default:
		return Options{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported options file %s (want .toml, .yaml or .yml)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Options{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "options file %s", path)
		}
		return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return ParseOptions(data, format)
}
