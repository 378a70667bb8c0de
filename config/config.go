// Package config holds the site configuration shared by the wasm entry point
// and the sitectl tool.
package config

import (
	_ "embed"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed site.yaml
var defaultSite []byte

// Config describes one deployment of the site.
type Config struct {
	Title         string `yaml:"title" toml:"title"`
	Origin        string `yaml:"origin" toml:"origin"`
	Stylesheet    string `yaml:"stylesheet" toml:"stylesheet"`
	MountSelector string `yaml:"mount_selector" toml:"mount_selector"`
	WasmPath      string `yaml:"wasm_path" toml:"wasm_path"`
	ExecJSPath    string `yaml:"exec_js_path" toml:"exec_js_path"`
	OutDir        string `yaml:"out_dir" toml:"out_dir"`
}

// Format selects a decoder.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Default returns the embedded configuration.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultSite, &c); err != nil {
		panic("config: embedded site.yaml is invalid: " + err.Error())
	}
	return &c
}

// Parse decodes data over the defaults, so omitted keys keep default values.
func Parse(data []byte, format Format) (*Config, error) {
	c := Default()
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrap(err, "decode yaml config")
		}
	case TOML:
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, errors.Wrap(err, "decode toml config")
		}
	default:
		return nil, errors.Errorf("unknown config format %q", format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a config file, picking the format from its extension.
func Load(path string) (*Config, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, errors.Errorf("config %s: unsupported extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks the fields the site cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Stylesheet) == "" {
		return errors.New("stylesheet must be set")
	}
	if strings.TrimSpace(c.MountSelector) == "" {
		return errors.New("mount_selector must be set")
	}
	u, err := url.Parse(c.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("origin %q must be an absolute URL", c.Origin)
	}
	return nil
}

// URL joins the origin and a site path.
func (c *Config) URL(path string) string {
	return strings.TrimSuffix(c.Origin, "/") + path
}
