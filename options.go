package pairmap

import (
	"io"
)

const dryRunStr = "DRY RUN"

type InsertOption struct {
	Entries     []string `arg:"" name:"entry" help:"entries to insert as key=value (value only with --generate-key)" json:"entries,omitempty"`
	GenerateKey bool     `name:"generate-key" help:"use a random UUID as the key of each entry" json:"generate_key,omitempty"`
	DryRun      bool     `name:"dry-run" help:"dry run" json:"dry_run,omitempty"`
}

func (opt InsertOption) DryRunString() string {
	if opt.DryRun {
		return dryRunStr
	}
	return ""
}

type GetOption struct {
	Key    string    `arg:"" name:"key" help:"key to look up" json:"key,omitempty"`
	Writer io.Writer `kong:"-" json:"-"`
}

type GetKeyOption struct {
	Value  string    `arg:"" name:"value" help:"value to look up" json:"value,omitempty"`
	Writer io.Writer `kong:"-" json:"-"`
}

type RenderOption struct {
	Format  string    `name:"format" help:"output format (json, yaml, jsonnet, table, tsv)" default:"json" enum:"json,yaml,jsonnet,table,tsv" json:"format,omitempty"`
	KeyCase string    `name:"key-case" help:"convert keys (none, snake, camel)" default:"none" enum:"none,snake,camel" json:"key_case,omitempty"`
	Writer  io.Writer `kong:"-" json:"-"`
}

type InitOption struct {
	Data       string `name:"data" help:"path to data file, relative to the config file" default:"entries.yaml" json:"data,omitempty"`
	Index      bool   `name:"index" help:"enable first match index" json:"index,omitempty"`
	MaxEntries int    `name:"max-entries" help:"maximum number of entries (0 is unlimited)" default:"0" json:"max_entries,omitempty"`
	MaxBytes   int    `name:"max-bytes" help:"maximum bytes of keys and values (0 is unlimited)" default:"0" json:"max_bytes,omitempty"`
	Force      bool   `name:"force" help:"overwrite existing config without confirmation" json:"force,omitempty"`

	ConfigPath string `kong:"-" json:"-"`
}

type DemoOption struct {
	Key    string    `name:"key" help:"key of the demo entry" default:"name" json:"key,omitempty"`
	Value  string    `name:"value" help:"value of the demo entry" default:"XXIV" json:"value,omitempty"`
	Writer io.Writer `kong:"-" json:"-"`
}
