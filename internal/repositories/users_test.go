package repositories

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"shelfmate/internal/shared"
	th "shelfmate/internal/testing"
)

func TestCredentialRepository(t *testing.T) {
	t.Run("RegisterThenAuthenticate", func(t *testing.T) {
		repo := NewCredentialRepository(th.TempPath(t, "users.json"))

		if err := repo.Register("alice", "s3cret"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		ok, err := repo.Authenticate("alice", "s3cret")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if !ok {
			t.Error("expected correct password to authenticate")
		}

		ok, err = repo.Authenticate("alice", "wrong")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if ok {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("AuthenticateUnknownUser", func(t *testing.T) {
		repo := NewCredentialRepository(th.TempPath(t, "users.json"))

		ok, err := repo.Authenticate("nobody", "pw")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if ok {
			t.Error("unknown user must not authenticate")
		}
	})

	t.Run("DuplicateUser", func(t *testing.T) {
		path := th.TempPath(t, "users.json")
		repo := NewCredentialRepository(path)

		if err := repo.Register("alice", "first"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		err := repo.Register("alice", "second")
		if !errors.Is(err, shared.ErrDuplicateUser) {
			t.Fatalf("expected ErrDuplicateUser, got %v", err)
		}

		// The existing credential is untouched.
		ok, _ := repo.Authenticate("alice", "first")
		if !ok {
			t.Error("original password should still authenticate")
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		repo := NewCredentialRepository(th.TempPath(t, "users.json"))

		for _, tc := range []struct{ username, password string }{
			{"", "pw"},
			{"   ", "pw"},
			{"bob", ""},
		} {
			if err := repo.Register(tc.username, tc.password); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("Register(%q, %q): expected ErrInvalidInput, got %v", tc.username, tc.password, err)
			}
		}
	})

	t.Run("StoredFormat", func(t *testing.T) {
		path := th.TempPath(t, "users.json")
		repo := NewCredentialRepository(path)

		if err := repo.Register("alice", "s3cret"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		var users map[string]string
		if err := json.Unmarshal([]byte(th.MustReadFile(t, path)), &users); err != nil {
			t.Fatalf("users document should be a map: %v", err)
		}

		want := base64.StdEncoding.EncodeToString([]byte("s3cret"))
		if users["alice"] != want {
			t.Errorf("expected encoded password %q, got %q", want, users["alice"])
		}
	})

	t.Run("CorruptDocumentIsEmpty", func(t *testing.T) {
		path := th.TempPath(t, "users.json")
		th.MustWriteFile(t, path, "{not json")
		repo := NewCredentialRepository(path)

		// Read failure is masked with an empty map; signup proceeds.
		if err := repo.Register("alice", "pw"); err != nil {
			t.Fatalf("Register on corrupt store failed: %v", err)
		}
		if !repo.Exists("alice") {
			t.Error("expected alice to exist after register")
		}
	})
}
