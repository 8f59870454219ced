package storage

import (
	"context"
	"sort"
)

// MemoryStorage keeps records for the lifetime of the process only.
type MemoryStorage struct {
	records map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

func (m *MemoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.records[key]
	return ok, nil
}

func (m *MemoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStorage) Write(ctx context.Context, key string, data []byte) error {
	m.records[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) (bool, error) {
	_, ok := m.records[key]
	delete(m.records, key)
	return ok, nil
}

func (m *MemoryStorage) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
