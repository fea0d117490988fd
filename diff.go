package pairmap

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/kylelemons/godebug/diff"
)

type DiffOption struct {
	Path    string    `arg:"" name:"path" help:"data file to compare with" type:"path" json:"path,omitempty"`
	Unified bool      `name:"unified" help:"output in unified format" short:"u" default:"false" json:"unified,omitempty"`
	Writer  io.Writer `kong:"-" json:"-"`
}

type diffParams struct {
	unified bool
	fromURI string
	toURI   string
}

type DiffStringOption func(*diffParams)

func DiffFromURI(uri string) DiffStringOption {
	return func(p *diffParams) {
		p.fromURI = uri
	}
}

func DiffToURI(uri string) DiffStringOption {
	return func(p *diffParams) {
		p.toURI = uri
	}
}

func DiffUnified() DiffStringOption {
	return func(p *diffParams) {
		p.unified = true
	}
}

// DiffString returns the difference between the JSON encodings of from and to.
// It returns "" when both maps hold the same entries in the same order.
func DiffString(from, to *Map, opts ...DiffStringOption) string {
	var params diffParams
	for _, opt := range opts {
		opt(&params)
	}
	fromStr := MarshalJSONString(from)
	toStr := MarshalJSONString(to)
	if fromStr == toStr {
		return ""
	}

	var ds string
	if params.unified {
		edits := myers.ComputeEdits(span.URIFromPath(params.fromURI), fromStr, toStr)
		ds = fmt.Sprint(gotextdiff.ToUnified(params.fromURI, params.toURI, fromStr, edits))
	} else {
		ds = fmt.Sprintf("--- %s\n+++ %s\n%s", params.fromURI, params.toURI, diff.Diff(fromStr, toStr))
	}
	return colorize(ds)
}

func colorize(ds string) string {
	var builder strings.Builder
	for _, str := range strings.Split(strings.TrimSuffix(ds, "\n"), "\n") {
		switch {
		case strings.HasPrefix(str, "+++"), strings.HasPrefix(str, "---"):
			builder.WriteString(str + "\n")
		case strings.HasPrefix(str, "+"):
			builder.WriteString(color.GreenString(str) + "\n")
		case strings.HasPrefix(str, "-"):
			builder.WriteString(color.RedString(str) + "\n")
		default:
			builder.WriteString(str + "\n")
		}
	}
	return builder.String()
}

func (app *App) Diff(ctx context.Context, opt DiffOption) error {
	if _, err := os.Stat(opt.Path); err != nil {
		return fmt.Errorf("failed to load %s: %w", opt.Path, err)
	}
	other, err := app.loadMap(opt.Path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opt.Path, err)
	}
	defer other.Destroy()

	opts := []DiffStringOption{
		DiffFromURI(app.cfg.DataPath()),
		DiffToURI(opt.Path),
	}
	if opt.Unified {
		opts = append(opts, DiffUnified())
	}
	ds := DiffString(app.m, other, opts...)
	if ds == "" {
		log.Println("[info] no difference")
		return nil
	}
	w := opt.Writer
	if w == nil {
		w = app.stdout
	}
	_, err = io.WriteString(w, ds)
	return err
}
