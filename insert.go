package pairmap

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

func parseEntries(raw []string, generateKey bool) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for _, s := range raw {
		if generateKey {
			uuidObj, err := uuid.NewRandom()
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: uuidObj.String(), Value: s})
			continue
		}
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid entry, expected key=value: %s", s)
		}
		entries = append(entries, Entry{Key: kv[0], Value: kv[1]})
	}
	for _, e := range entries {
		if !utf8.ValidString(e.Key) || !utf8.ValidString(e.Value) {
			return nil, fmt.Errorf("invalid entry %q=%q: %w", e.Key, e.Value, ErrInvalidUTF8)
		}
	}
	return entries, nil
}

func (app *App) Insert(ctx context.Context, opt InsertOption) error {
	log.Println("[info] Starting insert", opt.DryRunString())
	entries, err := parseEntries(opt.Entries, opt.GenerateKey)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to insert")
	}
	before := app.m.Len()
	for _, e := range entries {
		if err := app.m.Insert(e.Key, e.Value); err != nil {
			return fmt.Errorf("failed to insert %q: %w", e.Key, err)
		}
		log.Printf("[notice] insert key=%q value=%q %s", e.Key, e.Value, opt.DryRunString())
	}
	if opt.DryRun {
		log.Printf("[info] dry run ok, %d entries would be stored", app.m.Len())
		return nil
	}
	if err := app.save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", app.cfg.DataPath(), err)
	}
	log.Printf("[info] finish insert, %d -> %d entries", before, app.m.Len())
	return nil
}
