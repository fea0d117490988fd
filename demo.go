package pairmap

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Demo inserts one entry into a fresh map, prints the value found by key and
// the key found by value, then destroys the map.
func Demo(ctx context.Context, opt DemoOption) error {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	m := NewMap()
	defer m.Destroy()
	if err := m.Insert(opt.Key, opt.Value); err != nil {
		return err
	}
	value, ok := m.Get(opt.Key)
	if !ok {
		return fmt.Errorf("key %q: %w", opt.Key, ErrNotFound)
	}
	key, ok := m.GetKey(opt.Value)
	if !ok {
		return fmt.Errorf("value %q: %w", opt.Value, ErrNotFound)
	}
	_, err := io.WriteString(w, value+"\n"+key+"\n")
	return err
}
