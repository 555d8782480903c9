package auth

import "sync"

// MockStore implements Store for testing purposes
type MockStore struct {
	key string
	set bool
	mu  sync.RWMutex

	// Error injection for testing
	SetError    error
	GetError    error
	DeleteError error
}

// NewMockStore creates a new mock store
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Set saves the API key to the mock store
func (m *MockStore) Set(key string) error {
	if m.SetError != nil {
		return m.SetError
	}
	if key == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	m.set = true
	return nil
}

// Get retrieves the API key from the mock store
func (m *MockStore) Get() (string, error) {
	if m.GetError != nil {
		return "", m.GetError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", ErrKeyNotFound
	}
	return m.key, nil
}

// Delete removes the API key from the mock store
func (m *MockStore) Delete() error {
	if m.DeleteError != nil {
		return m.DeleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = ""
	m.set = false
	return nil
}
