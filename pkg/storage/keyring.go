package storage

import (
	"encoding/json"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	// ServiceName is the identifier used for all FormFlow secrets in the system keyring.
	ServiceName = "formflow"

	// secretIndexKey is the keyring entry holding the index of stored secret keys.
	secretIndexKey = "__formflow_index__"
)

// SecretStore defines the interface for secure secret-value storage.
// Secret form fields are stored here instead of the draft database.
type SecretStore interface {
	// Set stores a secret securely
	Set(key string, value string) error
	// Get retrieves a secret
	Get(key string) (string, error)
	// Delete removes a secret
	Delete(key string) error
	// List returns all secret keys (not the values)
	List() ([]string, error)
}

// SecretKey builds the keyring key for a draft field.
func SecretKey(draftID, fieldID string) string {
	return draftID + "/" + fieldID
}

// SecretRef is the value stored in a draft row in place of a secret;
// it points at the keyring entry.
func SecretRef(key string) string {
	return secretRefPrefix + key
}

// ParseSecretRef extracts the keyring key from a stored reference.
func ParseSecretRef(v string) (string, bool) {
	if len(v) < len(secretRefPrefix) || v[:len(secretRefPrefix)] != secretRefPrefix {
		return "", false
	}
	return v[len(secretRefPrefix):], true
}

const secretRefPrefix = "keyring:"

// KeyringSecretStore implements SecretStore using the system keyring.
//   - macOS: Keychain
//   - Windows: Credential Manager
//   - Linux: Secret Service (GNOME Keyring, KWallet)
type KeyringSecretStore struct {
	service string
}

// NewKeyringSecretStore creates a keyring-based secret store.
func NewKeyringSecretStore() *KeyringSecretStore {
	return &KeyringSecretStore{
		service: ServiceName,
	}
}

// Set stores a secret in the system keyring. The key is used as the
// account name, and value is the password.
func (s *KeyringSecretStore) Set(key string, value string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}

	// Update the secret index. Failure is non-fatal: the secret itself
	// is stored.
	_ = s.addToIndex(key)

	return nil
}

// Get retrieves a secret from the system keyring.
func (s *KeyringSecretStore) Get(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("secret key cannot be empty")
	}

	value, err := keyring.Get(s.service, key)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("secret not found: %s", key)
		}
		return "", fmt.Errorf("failed to retrieve secret: %w", err)
	}

	return value, nil
}

// Delete removes a secret from the system keyring.
func (s *KeyringSecretStore) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	if err := keyring.Delete(s.service, key); err != nil {
		if err == keyring.ErrNotFound {
			return fmt.Errorf("secret not found: %s", key)
		}
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	_ = s.removeFromIndex(key)

	return nil
}

// List returns all secret keys stored by FormFlow. The index is kept
// as a dedicated keyring entry.
func (s *KeyringSecretStore) List() ([]string, error) {
	indexJSON, err := keyring.Get(s.service, secretIndexKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to retrieve secret index: %w", err)
	}

	var keys []string
	if err := json.Unmarshal([]byte(indexJSON), &keys); err != nil {
		return nil, fmt.Errorf("failed to parse secret index: %w", err)
	}

	return keys, nil
}

// addToIndex adds a key to the secret index.
func (s *KeyringSecretStore) addToIndex(key string) error {
	keys, err := s.List()
	if err != nil {
		return err
	}

	for _, k := range keys {
		if k == key {
			return nil // Already in index
		}
	}

	return s.saveIndex(append(keys, key))
}

// removeFromIndex removes a key from the secret index.
func (s *KeyringSecretStore) removeFromIndex(key string) error {
	keys, err := s.List()
	if err != nil {
		return err
	}

	newKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			newKeys = append(newKeys, k)
		}
	}

	return s.saveIndex(newKeys)
}

// saveIndex saves the secret index to the keyring.
func (s *KeyringSecretStore) saveIndex(keys []string) error {
	indexJSON, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal secret index: %w", err)
	}

	if err := keyring.Set(s.service, secretIndexKey, string(indexJSON)); err != nil {
		return fmt.Errorf("failed to save secret index: %w", err)
	}

	return nil
}

// MemorySecretStore is an in-memory SecretStore for tests and headless
// environments without a system keyring.
type MemorySecretStore struct {
	secrets map[string]string
}

// NewMemorySecretStore creates an empty in-memory store.
func NewMemorySecretStore() *MemorySecretStore {
	return &MemorySecretStore{secrets: make(map[string]string)}
}

// Set implements SecretStore.
func (s *MemorySecretStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}
	s.secrets[key] = value
	return nil
}

// Get implements SecretStore.
func (s *MemorySecretStore) Get(key string) (string, error) {
	v, ok := s.secrets[key]
	if !ok {
		return "", fmt.Errorf("secret not found: %s", key)
	}
	return v, nil
}

// Delete implements SecretStore.
func (s *MemorySecretStore) Delete(key string) error {
	if _, ok := s.secrets[key]; !ok {
		return fmt.Errorf("secret not found: %s", key)
	}
	delete(s.secrets, key)
	return nil
}

// List implements SecretStore.
func (s *MemorySecretStore) List() ([]string, error) {
	keys := make([]string, 0, len(s.secrets))
	for k := range s.secrets {
		keys = append(keys, k)
	}
	return keys, nil
}
