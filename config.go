package pairmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	jsonnet "github.com/google/go-jsonnet"
	"github.com/google/go-jsonnet/ast"
	gv "github.com/hashicorp/go-version"
	gc "github.com/kayac/go-config"
)

const (
	jsonnetExt = ".jsonnet"
	jsonExt    = ".json"
	ymlExt     = ".yml"
	yamlExt    = ".yaml"
)

type ConfigLoader struct {
	loader *gc.Loader
	vm     *jsonnet.VM
}

func NewConfigLoader(extStr, extCode map[string]string) *ConfigLoader {
	vm := jsonnet.MakeVM()
	for k, v := range extStr {
		vm.ExtVar(k, v)
	}
	for k, v := range extCode {
		vm.ExtCode(k, v)
	}
	vm.NativeFunction(&jsonnet.NativeFunction{
		Name:   "env",
		Params: ast.Identifiers{"name", "default"},
		Func: func(args []interface{}) (interface{}, error) {
			name, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("env: name must be a string")
			}
			if v, ok := os.LookupEnv(name); ok {
				return v, nil
			}
			return args[1], nil
		},
	})
	return &ConfigLoader{
		loader: gc.New(),
		vm:     vm,
	}
}

func (l *ConfigLoader) load(path string, strict bool, withEnv bool, v any) error {
	ext := filepath.Ext(path)
	switch ext {
	case yamlExt, ymlExt:
		var b []byte
		var err error
		if withEnv {
			b, err = l.loader.ReadWithEnv(path)
		} else {
			b, err = os.ReadFile(path)
		}
		if err != nil {
			return err
		}
		var opts []yaml.DecodeOption
		if strict {
			opts = append(opts, yaml.DisallowUnknownField())
		}
		dec := yaml.NewDecoder(bytes.NewReader(b), opts...)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		return nil
	case jsonExt, jsonnetExt:
		jsonStr, err := l.vm.EvaluateFile(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate jsonnet file: %w", err)
		}
		b := []byte(jsonStr)
		if withEnv {
			b, err = l.loader.ReadWithEnvBytes(b)
			if err != nil {
				return fmt.Errorf("failed to read template file: %w", err)
			}
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func (l *ConfigLoader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := l.load(path, true, true, cfg); err != nil {
		return nil, fmt.Errorf("load config `%s`: %w", path, err)
	}
	cfg.ConfigDir = filepath.Dir(path)
	if err := cfg.Restrict(); err != nil {
		return nil, fmt.Errorf("config `%s` is invalid: %w", path, err)
	}
	log.Printf("[debug] config loaded from %s, data=%s", path, cfg.DataPath())
	return cfg, nil
}

// LoadEntries reads a data file holding a sequence of {key, value} objects.
// Stored strings are taken literally, so env templates are not expanded.
func (l *ConfigLoader) LoadEntries(path string) ([]Entry, error) {
	var entries []Entry
	if err := l.load(path, true, false, &entries); err != nil {
		return nil, fmt.Errorf("load entries `%s`: %w", path, err)
	}
	return entries, nil
}

type Config struct {
	RequiredVersion string        `yaml:"required_version,omitempty" json:"required_version,omitempty"`
	Data            string        `yaml:"data" json:"data"`
	Index           bool          `yaml:"index,omitempty" json:"index,omitempty"`
	Limits          *LimitsConfig `yaml:"limits,omitempty" json:"limits,omitempty"`

	ConfigDir string `yaml:"-" json:"-"`
	//private field
	versionConstraints gv.Constraints
}

type LimitsConfig struct {
	MaxEntries int `yaml:"max_entries,omitempty" json:"max_entries,omitempty"`
	MaxBytes   int `yaml:"max_bytes,omitempty" json:"max_bytes,omitempty"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Data: "entries.yaml",
	}
}

// Restrict restricts a configuration.
func (cfg *Config) Restrict() error {
	if cfg.RequiredVersion != "" {
		constraints, err := gv.NewConstraint(cfg.RequiredVersion)
		if err != nil {
			return fmt.Errorf("required_version has invalid format: %w", err)
		}
		cfg.versionConstraints = constraints
	}
	if cfg.Data == "" {
		return errors.New("data is required")
	}
	if cfg.Limits != nil {
		if err := cfg.Limits.Restrict(); err != nil {
			return fmt.Errorf("limits.%w", err)
		}
	}
	return nil
}

func (cfg *LimitsConfig) Restrict() error {
	if cfg.MaxEntries < 0 {
		return errors.New("max_entries must not be negative")
	}
	if cfg.MaxBytes < 0 {
		return errors.New("max_bytes must not be negative")
	}
	return nil
}

// ValidateVersion validates a version satisfies required_version.
func (cfg *Config) ValidateVersion(version string) error {
	if cfg.versionConstraints == nil {
		log.Println("[debug] required_version is empty. Skip checking required_version.")
		return nil
	}
	versionParts := strings.SplitN(version, "-", 2)
	v, err := gv.NewVersion(versionParts[0])
	if err != nil {
		log.Printf("[warn] Invalid version format \"%s\". Skip checking required_version.", version)
		// invalid version string (e.g. "current") always allowed
		return nil
	}
	if !cfg.versionConstraints.Check(v) {
		return fmt.Errorf("version %s does not satisfy constraints required_version: %s", version, cfg.versionConstraints)
	}
	return nil
}

func (cfg *Config) DataPath() string {
	if filepath.IsAbs(cfg.Data) || cfg.ConfigDir == "" {
		return cfg.Data
	}
	return filepath.Join(cfg.ConfigDir, cfg.Data)
}

func (cfg *Config) MapOptions() []Option {
	var opts []Option
	if cfg.Index {
		opts = append(opts, WithIndex())
	}
	if cfg.Limits != nil {
		if cfg.Limits.MaxEntries > 0 {
			opts = append(opts, WithMaxEntries(cfg.Limits.MaxEntries))
		}
		if cfg.Limits.MaxBytes > 0 {
			opts = append(opts, WithMaxBytes(cfg.Limits.MaxBytes))
		}
	}
	return opts
}
