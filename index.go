package pairmap

// firstIndex remembers the position where each string was seen first.
// Entries are never removed, so a recorded position stays valid.
type firstIndex struct {
	positions map[string]int
}

func newFirstIndex() *firstIndex {
	return &firstIndex{
		positions: make(map[string]int),
	}
}

func (ix *firstIndex) Set(s string, pos int) {
	if _, ok := ix.positions[s]; !ok {
		ix.positions[s] = pos
	}
}

func (ix *firstIndex) Get(s string) (int, bool) {
	pos, ok := ix.positions[s]
	return pos, ok
}

func (ix *firstIndex) Len() int {
	return len(ix.positions)
}
