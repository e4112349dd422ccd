package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment overrides: PATSUB_OUTPUT_FORMAT
// sets output.format.
const EnvPrefix = "PATSUB_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// FormatNames lists the accepted output.format values, aliases included.
var FormatNames = []string{"auto", "term", "terminal", "text", "plain", "json", "yaml", "yml", "toml"}

// Config is the effective patsub configuration.
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output"`
	Table  TableConfig  `koanf:"table" toml:"table"`
	Log    LogConfig    `koanf:"log" toml:"log"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Width  int    `koanf:"width" toml:"width"`
}

// TableConfig names the default pattern table.
type TableConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultsContent returns the embedded default configuration file.
func DefaultsContent() string {
	return string(defaultConfig)
}

// UserConfigPath returns $XDG_CONFIG_HOME/patsub/config.toml.
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "patsub", "config.toml")
}

// Load builds the configuration from the embedded defaults, a config file
// and PATSUB_* environment variables, in that order. An explicit path must
// exist; when path is empty the user config file is used if present.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "config file %s not found", path).
				WithDetail("path", path)
		}
	} else if candidate := UserConfigPath(); fileExists(candidate) {
		path = candidate
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and the output format name.
func (c *Config) Validate() error {
	if !validFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q, want one of %s",
			c.Output.Format, strings.Join(FormatNames, ", ")).
			WithDetail("key", "output.format")
	}
	if c.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.width must not be negative, got %d", c.Output.Width).
			WithDetail("key", "output.width")
	}
	return nil
}

func validFormat(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return true
	}
	for _, known := range FormatNames {
		if name == known {
			return true
		}
	}
	return false
}

// TOML encodes the configuration in the config file format.
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	return string(data), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
