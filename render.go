package pairmap

import (
	"context"
	"log"
)

func (app *App) Render(ctx context.Context, opt RenderOption) error {
	keyCase := opt.KeyCase
	if keyCase == "none" {
		keyCase = ""
	}
	f := OutputFormatter{
		Entries: app.m.Entries(),
		Format:  opt.Format,
		KeyCase: keyCase,
	}
	bs, err := f.Bytes()
	if err != nil {
		return err
	}
	log.Printf("[debug] render %d entries as %s", app.m.Len(), opt.Format)
	w := opt.Writer
	if w == nil {
		w = app.stdout
	}
	_, err = w.Write(bs)
	return err
}
