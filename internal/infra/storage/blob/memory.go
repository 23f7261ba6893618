package blob

import (
	"context"
	"strings"
	"sync"
)

// Memory потокобезопасное in-memory key-value хранилище
//
// Используется в тестах вместо Postgres: хранилище передаётся явным
// объектом, поэтому тесты подменяют его без глобального состояния
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory создает пустое in-memory хранилище
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Put сохраняет значение по ключу
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[key] = copied
	return nil
}

// Get возвращает значение по ключу или ErrKeyNotFound
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Remove удаляет значение по ключу
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Clear удаляет все ключи с указанным префиксом
func (m *Memory) Clear(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
		}
	}
	return nil
}

// Len возвращает количество сохранённых ключей
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
