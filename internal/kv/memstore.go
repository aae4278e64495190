package kv

// MemStore is a map-backed Store for tests.
type MemStore struct {
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (m *MemStore) Get(name string) (string, bool, error) {
	v, ok := m.data[name]
	return v, ok, nil
}

func (m *MemStore) Set(name, value string) error {
	m.data[name] = value
	return nil
}
