package pairmap

import (
	"iter"
	"sync"
)

// SyncMap guards a Map with a RWMutex.
type SyncMap struct {
	mu sync.RWMutex
	m  *Map
}

func NewSyncMap(opts ...Option) *SyncMap {
	return &SyncMap{
		m: NewMap(opts...),
	}
}

func (s *SyncMap) Insert(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Insert(key, value)
}

func (s *SyncMap) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

func (s *SyncMap) GetKey(value string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.GetKey(value)
}

func (s *SyncMap) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.IsEmpty()
}

func (s *SyncMap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Snapshot returns a copy of the entries taken under the read lock.
func (s *SyncMap) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Entries()
}

// All iterates over a snapshot taken when All is called, so yield may call back into s.
func (s *SyncMap) All() iter.Seq2[string, string] {
	entries := s.Snapshot()
	return func(yield func(string, string) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (s *SyncMap) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Destroy()
}
