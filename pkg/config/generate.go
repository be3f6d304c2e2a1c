package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/tint/pkg/errors"
)

const generatedHeader = `# tint configuration file
#
# Uncomment and edit the settings you want to change. Command line flags
# take precedence over this file.

`

// Defaults returns the settings of the embedded defaults file
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to unmarshal defaults")
	}
	return &cfg, nil
}

// GenerateConfigContent renders the defaults as a TOML file with every
// value commented out
func GenerateConfigContent() (string, error) {
	cfg, err := Defaults()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := gotoml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrConfig, "failed to encode defaults")
	}
	return generatedHeader + commentOutConfigValues(buf.String()), nil
}

// GenerateConfigFile writes a commented default config to path. An existing
// file is never overwritten.
func GenerateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfig, "config file '%s' already exists", path)
	}
	content, err := GenerateConfigContent()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create '%s'", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write '%s'", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [section]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
