package pairmap

import (
	"fmt"
	"log"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/serenize/snaker"
)

const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatJsonnet = "jsonnet"
	FormatTable   = "table"
	FormatTSV     = "tsv"

	KeyCaseSnake = "snake"
	KeyCaseCamel = "camel"
)

type OutputFormatter struct {
	Entries []Entry
	Format  string
	KeyCase string
}

func SnakeToCamel(s string) string {
	return snaker.SnakeToCamel(s)
}

func CamelToSnake(s string) string {
	return snaker.CamelToSnake(s)
}

func (f OutputFormatter) entries() ([]Entry, error) {
	var modifier func(string) string
	switch f.KeyCase {
	case "":
		if f.Entries == nil {
			return []Entry{}, nil
		}
		return f.Entries, nil
	case KeyCaseSnake:
		modifier = CamelToSnake
	case KeyCaseCamel:
		modifier = SnakeToCamel
	default:
		return nil, fmt.Errorf("unknown key case: %s", f.KeyCase)
	}
	ret := make([]Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		ret = append(ret, Entry{Key: modifier(e.Key), Value: e.Value})
	}
	return ret, nil
}

func (f OutputFormatter) JSON() ([]byte, error) {
	entries, err := f.entries()
	if err != nil {
		return nil, err
	}
	buf, err := marshalJSON(entries)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f OutputFormatter) YAML() ([]byte, error) {
	entries, err := f.entries()
	if err != nil {
		return nil, err
	}
	// every scalar is double quoted so that tabs and keywords like "no" survive a reload
	return yaml.MarshalWithOptions(entries, yaml.JSON(), yaml.Flow(false))
}

func (f OutputFormatter) Jsonnet() ([]byte, error) {
	bs, err := f.JSON()
	if err != nil {
		return nil, err
	}
	return JSON2Jsonnet("entries.jsonnet", bs)
}

func (f OutputFormatter) TSV() ([]byte, error) {
	entries, err := f.entries()
	if err != nil {
		return nil, err
	}
	buf := new(strings.Builder)
	for _, e := range entries {
		buf.WriteString(e.Key + "\t" + e.Value + "\n")
	}
	return []byte(buf.String()), nil
}

func (f OutputFormatter) Table() ([]byte, error) {
	entries, err := f.entries()
	if err != nil {
		return nil, err
	}
	buf := new(strings.Builder)
	w := tablewriter.NewWriter(buf)
	w.SetHeader([]string{"Key", "Value"})
	w.SetAutoWrapText(false)
	for _, e := range entries {
		w.Append([]string{e.Key, e.Value})
	}
	w.Render()
	return []byte(buf.String()), nil
}

func (f OutputFormatter) Bytes() ([]byte, error) {
	switch f.Format {
	case "", FormatJSON:
		return f.JSON()
	case FormatYAML:
		return f.YAML()
	case FormatJsonnet:
		return f.Jsonnet()
	case FormatTable:
		return f.Table()
	case FormatTSV:
		return f.TSV()
	default:
		return nil, fmt.Errorf("unknown format: %s", f.Format)
	}
}

func (f OutputFormatter) String() string {
	bs, err := f.Bytes()
	if err != nil {
		log.Println("[warn] failed to format entries", err)
		return ""
	}
	return string(bs)
}
