// Package pairmap provides an insertion ordered string to string map with
// forward (key to value) and reverse (value to key) lookup.
package pairmap

import (
	"fmt"
	"iter"
	"strings"
)

// Entry is a stored key/value pair.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Map keeps entries in insertion order. Keys and values are not required to
// be unique; lookups return the first match.
//
// Map is not safe for concurrent use, see SyncMap.
type Map struct {
	entries    []Entry
	bytes      int
	maxEntries int
	maxBytes   int
	keyIndex   *firstIndex
	valueIndex *firstIndex
	destroyed  bool
}

type Option func(*Map)

// WithMaxEntries limits the number of entries. 0 means unlimited.
func WithMaxEntries(n int) Option {
	return func(m *Map) {
		m.maxEntries = n
	}
}

// WithMaxBytes limits the total bytes of stored keys and values. 0 means unlimited.
func WithMaxBytes(n int) Option {
	return func(m *Map) {
		m.maxBytes = n
	}
}

// WithIndex keeps first match indexes so Get and GetKey do not scan.
func WithIndex() Option {
	return func(m *Map) {
		m.keyIndex = newFirstIndex()
		m.valueIndex = newFirstIndex()
	}
}

func NewMap(opts ...Option) *Map {
	m := &Map{
		entries: make([]Entry, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Insert appends a copy of key and value. On error the map is unchanged.
func (m *Map) Insert(key, value string) error {
	if m.destroyed {
		return ErrDestroyed
	}
	size := len(key) + len(value)
	if m.maxEntries > 0 && len(m.entries)+1 > m.maxEntries {
		return fmt.Errorf("entry limit %d reached: %w", m.maxEntries, ErrAllocationFailure)
	}
	if m.maxBytes > 0 && m.bytes+size > m.maxBytes {
		return fmt.Errorf("need %d bytes, %d of %d bytes in use: %w", size, m.bytes, m.maxBytes, ErrAllocationFailure)
	}
	pos := len(m.entries)
	m.entries = append(m.entries, Entry{
		Key:   strings.Clone(key),
		Value: strings.Clone(value),
	})
	m.bytes += size
	if m.keyIndex != nil {
		m.keyIndex.Set(m.entries[pos].Key, pos)
		m.valueIndex.Set(m.entries[pos].Value, pos)
	}
	return nil
}

// Get returns the value of the first entry whose key equals key.
func (m *Map) Get(key string) (string, bool) {
	if m.keyIndex != nil {
		pos, ok := m.keyIndex.Get(key)
		if !ok {
			return "", false
		}
		return m.entries[pos].Value, true
	}
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// GetKey returns the key of the first entry whose value equals value.
func (m *Map) GetKey(value string) (string, bool) {
	if m.valueIndex != nil {
		pos, ok := m.valueIndex.Get(value)
		if !ok {
			return "", false
		}
		return m.entries[pos].Key, true
	}
	for _, e := range m.entries {
		if e.Value == value {
			return e.Key, true
		}
	}
	return "", false
}

func (m *Map) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Bytes returns the total size of stored keys and values.
func (m *Map) Bytes() int {
	return m.bytes
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	if len(m.entries) == 0 {
		return nil
	}
	ret := make([]Entry, len(m.entries))
	copy(ret, m.entries)
	return ret
}

// Destroy releases all entries. The map must not be used afterwards;
// Insert reports ErrDestroyed and lookups find nothing.
func (m *Map) Destroy() {
	if m == nil {
		return
	}
	m.entries = nil
	m.bytes = 0
	m.keyIndex = nil
	m.valueIndex = nil
	m.destroyed = true
}
