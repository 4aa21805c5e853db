package repositories

import (
	"encoding/base64"
	"fmt"
	"strings"

	"shelfmate/internal/shared"
	"shelfmate/internal/storage"
)

// CredentialRepository persists the username → encoded password map.
type CredentialRepository struct {
	path string
}

// NewCredentialRepository creates a [CredentialRepository] backed by the users document at path.
func NewCredentialRepository(path string) *CredentialRepository {
	return &CredentialRepository{path: path}
}

// encodePassword reversibly encodes a password for storage. Base64, not a
// cryptographic hash; existing users documents depend on this scheme.
func encodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

func decodePassword(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode stored password: %w", err)
	}
	return string(raw), nil
}

// Register stores a new account and rewrites the users document.
//
// Fails with [shared.ErrDuplicateUser] when the username is taken and with
// [shared.ErrInvalidInput] when the username is blank or the password empty.
// The existing credential is never overwritten.
func (r *CredentialRepository) Register(username, password string) error {
	users := storage.LoadJSON(r.path, map[string]string{})
	if _, ok := users[username]; ok {
		return fmt.Errorf("%w: %s", shared.ErrDuplicateUser, username)
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}

	users[username] = encodePassword(password)
	return storage.SaveJSON(r.path, users)
}

// Authenticate decodes the stored password for username and compares it to
// the supplied one. An unknown username is a plain false, not an error.
func (r *CredentialRepository) Authenticate(username, password string) (bool, error) {
	users := storage.LoadJSON(r.path, map[string]string{})
	encoded, ok := users[username]
	if !ok {
		return false, nil
	}

	decoded, err := decodePassword(encoded)
	if err != nil {
		return false, err
	}
	return decoded == password, nil
}

// Exists reports whether username has a stored credential.
func (r *CredentialRepository) Exists(username string) bool {
	users := storage.LoadJSON(r.path, map[string]string{})
	_, ok := users[username]
	return ok
}
