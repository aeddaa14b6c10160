// Package storage provides the durable client-side key-value capability used
// to persist the session between runs. Implementations hold plain strings;
// callers coerce anything else before storing.
package storage

// Keys used by the session layer.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
)

// Storage is an injectable string-keyed store.
//
// Contract:
//   - Get returns the stored value and true, or "" and false when absent.
//   - Set overwrites any previous value.
//   - Remove is a no-op for absent keys.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Memory is an in-memory Storage, used in tests and as a fallback when no
// durable backend is configured.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}
