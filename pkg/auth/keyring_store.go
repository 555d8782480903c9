package auth

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "stackcollect"
	keyringUser    = "stack_exchange_api_key"
)

// KeyringStore persists the API key in the system keychain
type KeyringStore struct{}

// NewKeyringStore creates a keychain-backed store, probing availability
// first since headless systems often lack a keychain daemon.
func NewKeyringStore() (*KeyringStore, error) {
	testKey := "test_availability"
	if err := keyring.Set(keyringService, testKey, "test"); err != nil {
		return nil, fmt.Errorf("keyring not available: %w", err)
	}
	_ = keyring.Delete(keyringService, testKey)

	return &KeyringStore{}, nil
}

// Set saves the API key to the system keychain
func (k *KeyringStore) Set(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := keyring.Set(keyringService, keyringUser, key); err != nil {
		return fmt.Errorf("failed to store in keyring: %w", err)
	}
	return nil
}

// Get retrieves the API key from the system keychain
func (k *KeyringStore) Get() (string, error) {
	key, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to retrieve from keyring: %w", err)
	}
	return key, nil
}

// Delete removes the API key from the system keychain
func (k *KeyringStore) Delete() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete from keyring: %w", err)
	}
	return nil
}
