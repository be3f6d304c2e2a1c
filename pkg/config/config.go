package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "TINT_"

// Config holds the persistent settings
type Config struct {
	Theme  string   `koanf:"theme" toml:"theme"`
	Style  []string `koanf:"style" toml:"style"`
	Paging string   `koanf:"paging" toml:"paging"`
	Pager  string   `koanf:"pager" toml:"pager"`
	Color  string   `koanf:"color" toml:"color"`
	Tabs   int      `koanf:"tabs" toml:"tabs"`
}

// Load reads the defaults, the user config file and the environment
func Load() (*Config, error) {
	return LoadFile(paths.New().ConfigFile())
}

// LoadFile is Load with an explicit config file path. A missing file is
// not an error.
func LoadFile(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load defaults")
	}

	// 2. User config file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load config from '%s'", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfig, "cannot access config file '%s'", path)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to unmarshal configuration")
	}

	cfg.Style = trimAll(cfg.Style)
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func trimAll(list []string) []string {
	out := list[:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
