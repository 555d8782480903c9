package auth

import "os"

// envKeyName matches the variable the original collector scripts used
const envKeyName = "STACK_EXCHANGE_API_KEY"

// EnvStore reads the API key from the environment. It is read-only and
// exists so a key exported for one run wins over the stored one.
type EnvStore struct{}

// NewEnvStore creates a new environment-backed store
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Set is not supported for environment variables
func (e *EnvStore) Set(key string) error {
	return ErrStoreUnavailable
}

// Get retrieves the API key from the environment. The placeholder value
// from the sample .env file counts as unset.
func (e *EnvStore) Get() (string, error) {
	key := os.Getenv(envKeyName)
	if key == "" || key == "your_api_key_here" {
		return "", ErrKeyNotFound
	}
	return key, nil
}

// Delete is not supported for environment variables
func (e *EnvStore) Delete() error {
	return ErrStoreUnavailable
}
