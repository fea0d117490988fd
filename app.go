package pairmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

type App struct {
	cfg    *Config
	loader *ConfigLoader
	m      *Map
	stdout io.Writer
}

type AppOption func(*App)

func WithStdout(w io.Writer) AppOption {
	return func(app *App) {
		app.stdout = w
	}
}

func WithConfigLoader(l *ConfigLoader) AppOption {
	return func(app *App) {
		app.loader = l
	}
}

func New(ctx context.Context, cfg *Config, opts ...AppOption) (*App, error) {
	app := &App{
		cfg:    cfg,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.loader == nil {
		app.loader = NewConfigLoader(nil, nil)
	}
	m, err := app.loadMap(cfg.DataPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	app.m = m
	return app, nil
}

// loadMap builds a map from a data file. A missing file is an empty map.
func (app *App) loadMap(path string) (*Map, error) {
	m := NewMap(app.cfg.MapOptions()...)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[debug] data file %s does not exist, start with empty map", path)
			return m, nil
		}
		return nil, err
	}
	entries, err := app.loader.LoadEntries(path)
	if err != nil {
		return nil, err
	}
	if err := m.insertAll(entries); err != nil {
		m.Destroy()
		return nil, err
	}
	log.Printf("[debug] %d entries loaded from %s", m.Len(), path)
	return m, nil
}

// Map returns the loaded map.
func (app *App) Map() *Map {
	return app.m
}

func (app *App) Close() {
	app.m.Destroy()
}

func (app *App) save() error {
	path := app.cfg.DataPath()
	var bs []byte
	var err error
	switch filepath.Ext(path) {
	case yamlExt, ymlExt:
		bs, err = OutputFormatter{Entries: app.m.Entries(), Format: FormatYAML}.Bytes()
	case jsonExt:
		bs, err = OutputFormatter{Entries: app.m.Entries(), Format: FormatJSON}.Bytes()
	default:
		return fmt.Errorf("data file %s is read only, use .yaml, .yml or .json", path)
	}
	if err != nil {
		return err
	}
	return writeFileAtomic(path, bs, 0644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	fp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := fp.Name()
	defer os.Remove(tmp)
	if _, err := fp.Write(data); err != nil {
		fp.Close()
		return err
	}
	if err := fp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
