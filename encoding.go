package pairmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/goccy/go-yaml"
	"github.com/google/go-jsonnet/formatter"
)

func YAML2JSON(data []byte) ([]byte, error) {
	return yaml.YAMLToJSON(data)
}

func JSON2YAML(data []byte) ([]byte, error) {
	return yaml.JSONToYAML(data)
}

func JSON2Jsonnet(filename string, data []byte) ([]byte, error) {
	formatted, err := formatter.Format(filename, string(data), formatter.DefaultOptions())
	if err != nil {
		return data, err
	}
	return []byte(formatted), nil
}

func marshalJSON(s interface{}) (*bytes.Buffer, error) {
	bs, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bs, "", "  "); err != nil {
		return nil, err
	}
	if _, err := buf.WriteString("\n"); err != nil {
		return nil, err
	}
	return &buf, nil
}

func MarshalJSONString(s interface{}) string {
	b, err := marshalJSON(s)
	if err != nil {
		log.Println("[warn] failed to marshal json", err)
		return ""
	}
	return b.String()
}

func (m *Map) encodable() []Entry {
	entries := m.Entries()
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// MarshalJSON encodes the map as an ordered array of {"key","value"} objects.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.encodable())
}

// UnmarshalJSON appends the decoded entries through Insert.
func (m *Map) UnmarshalJSON(bs []byte) error {
	var entries []Entry
	if err := json.Unmarshal(bs, &entries); err != nil {
		return err
	}
	return m.insertAll(entries)
}

// MarshalYAML encodes the map as a sequence with double quoted scalars.
func (m *Map) MarshalYAML() ([]byte, error) {
	return OutputFormatter{Entries: m.encodable(), Format: FormatYAML}.YAML()
}

func (m *Map) UnmarshalYAML(bs []byte) error {
	var entries []Entry
	if err := yaml.Unmarshal(bs, &entries); err != nil {
		return err
	}
	return m.insertAll(entries)
}

func (m *Map) insertAll(entries []Entry) error {
	for i, e := range entries {
		if err := m.Insert(e.Key, e.Value); err != nil {
			return fmt.Errorf("entry[%d]: %w", i, err)
		}
	}
	return nil
}
