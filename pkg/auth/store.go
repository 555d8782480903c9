package auth

import "errors"

var (
	// ErrKeyNotFound is returned when no API key is stored
	ErrKeyNotFound = errors.New("API key not found")

	// ErrInvalidKey is returned for empty or malformed keys
	ErrInvalidKey = errors.New("invalid API key")

	// ErrStoreUnavailable is returned when a backend cannot perform the operation
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// Store is the interface for storing and retrieving the Stack Exchange
// API key
type Store interface {
	// Set saves the API key
	Set(key string) error

	// Get retrieves the stored API key
	Get() (string, error)

	// Delete removes the stored API key
	Delete() error
}

// Manager resolves the API key across backends. The environment variable
// acts as a per-run override and wins over the system keychain; writes
// always go to the keychain.
type Manager struct {
	env     Store
	keyring Store
}

// NewManager creates a credential manager. The keychain backend is
// optional: on systems without one, resolution falls back to the
// environment only.
func NewManager() *Manager {
	m := &Manager{env: NewEnvStore()}

	if ks, err := NewKeyringStore(); err == nil {
		m.keyring = ks
	}

	return m
}

// Resolve returns the API key from the first backend that has one.
// An empty key with ErrKeyNotFound means keyless mode.
func (m *Manager) Resolve() (string, error) {
	if key, err := m.env.Get(); err == nil {
		return key, nil
	}

	if m.keyring != nil {
		return m.keyring.Get()
	}

	return "", ErrKeyNotFound
}

// Set stores the API key in the system keychain
func (m *Manager) Set(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if m.keyring == nil {
		return ErrStoreUnavailable
	}
	return m.keyring.Set(key)
}

// Delete removes the API key from the system keychain
func (m *Manager) Delete() error {
	if m.keyring == nil {
		return ErrStoreUnavailable
	}
	return m.keyring.Delete()
}
