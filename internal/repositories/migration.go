package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"shelfmate/internal/shared"
	"shelfmate/internal/storage"
)

// legacyUser is one entry of the pre-map users document.
type legacyUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MigrateUsersFile converts a legacy list-form users document
// ([{"username": .., "password": ..}, ..]) into the map form keyed by
// username. Returns the number of accounts converted.
//
// Idempotent: a document already in map form is left untouched and a missing
// document is a no-op.
func MigrateUsersFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read users document: %w", err)
	}

	var asMap map[string]string
	if err := json.Unmarshal(data, &asMap); err == nil {
		return 0, nil
	}

	var asList []legacyUser
	if err := json.Unmarshal(data, &asList); err != nil {
		return 0, fmt.Errorf("%w: users document is neither map nor legacy list", shared.ErrInvalidInput)
	}

	users := make(map[string]string, len(asList))
	for _, u := range asList {
		users[u.Username] = u.Password
	}
	if err := storage.SaveJSON(path, users); err != nil {
		return 0, err
	}
	return len(users), nil
}
