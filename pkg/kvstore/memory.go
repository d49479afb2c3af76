package kvstore

import "sync"

// Memory is the in-process driver. It backs tests and the default local
// setup where persistence across restarts does not matter.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	fail map[string]error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
		fail: make(map[string]error),
	}
}

func (m *Memory) Get(key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	data, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := decode(key, data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Put(key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail[key]; err != nil {
		return err
	}

	data, err := encode(key, value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail[key]; err != nil {
		return err
	}
	delete(m.data, key)
	return nil
}

// FailWrites makes every Put/Delete on key return err until cleared with a
// nil err. Tests use it to exercise persistence-failure paths.
func (m *Memory) FailWrites(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		delete(m.fail, key)
		return
	}
	m.fail[key] = err
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
