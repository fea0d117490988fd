package pairmap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/Songmu/prompter"
	"github.com/goccy/go-yaml"
	gv "github.com/hashicorp/go-version"
	"golang.org/x/term"
)

// Init writes a new config file and an empty data file next to it.
func Init(ctx context.Context, opt InitOption) error {
	log.Println("[debug] config path =", opt.ConfigPath)
	configExt := filepath.Ext(opt.ConfigPath)
	if configExt != yamlExt && configExt != ymlExt {
		return errors.New("config file ext unexpected yaml or yml")
	}
	if _, err := os.Stat(opt.ConfigPath); err == nil && !opt.Force {
		ok, err := confirm(fmt.Sprintf("%s already exists. Overwrite?", opt.ConfigPath))
		if err != nil {
			return err
		}
		if !ok {
			log.Println("[info] Aborted")
			return errors.New("confirmation failed")
		}
	}

	cfg := NewDefaultConfig()
	if _, err := gv.NewVersion(Version); err == nil {
		cfg.RequiredVersion = ">=" + Version
	}
	cfg.Data = opt.Data
	cfg.Index = opt.Index
	if opt.MaxEntries > 0 || opt.MaxBytes > 0 {
		cfg.Limits = &LimitsConfig{
			MaxEntries: opt.MaxEntries,
			MaxBytes:   opt.MaxBytes,
		}
	}
	if err := cfg.Restrict(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg.ConfigDir = filepath.Dir(opt.ConfigPath)

	if err := createConfigFile(opt.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed create config file: %w", err)
	}
	log.Printf("[notice] save config to %s", opt.ConfigPath)

	dataPath := cfg.DataPath()
	if _, err := os.Stat(dataPath); err == nil {
		log.Printf("[info] data file %s already exists, keep it", dataPath)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := writeFileAtomic(dataPath, []byte("[]\n"), 0644); err != nil {
		return fmt.Errorf("failed create data file: %w", err)
	}
	log.Printf("[notice] save empty data to %s", dataPath)
	return nil
}

func confirm(msg string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("stdin is not a terminal, use --force to overwrite")
	}
	return prompter.YN(msg, false), nil
}

func createConfigFile(path string, cfg *Config) error {
	bs, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, bs, 0644)
}
