package pairmap

import (
	"context"
	"fmt"
	"io"
	"log"
)

func (app *App) Get(ctx context.Context, opt GetOption) error {
	value, ok := app.m.Get(opt.Key)
	if !ok {
		log.Printf("[warn] key %q not found", opt.Key)
		return fmt.Errorf("key %q: %w", opt.Key, ErrNotFound)
	}
	return app.writeLine(opt.Writer, value)
}

func (app *App) GetKey(ctx context.Context, opt GetKeyOption) error {
	key, ok := app.m.GetKey(opt.Value)
	if !ok {
		log.Printf("[warn] value %q not found", opt.Value)
		return fmt.Errorf("value %q: %w", opt.Value, ErrNotFound)
	}
	return app.writeLine(opt.Writer, key)
}

func (app *App) writeLine(w io.Writer, s string) error {
	if w == nil {
		w = app.stdout
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
