package pairmap

func (m *Map) RawEntries() []Entry {
	return m.entries
}

func (m *Map) IsDestroyed() bool {
	return m.destroyed
}

func (m *Map) IndexLen() (int, int) {
	if m.keyIndex == nil {
		return 0, 0
	}
	return m.keyIndex.Len(), m.valueIndex.Len()
}
