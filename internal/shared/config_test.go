package shared

import (
	"strings"
	"testing"

	th "shelfmate/internal/testing"
)

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()

	if conf.Storage.UsersPath != "./users.json" {
		t.Errorf("unexpected users path: %q", conf.Storage.UsersPath)
	}
	if conf.Storage.BooksPath != "./reading.json" {
		t.Errorf("unexpected books path: %q", conf.Storage.BooksPath)
	}
	if conf.Storage.SessionPath != "./config.json" {
		t.Errorf("unexpected session path: %q", conf.Storage.SessionPath)
	}
	if conf.App.DefaultLanguage != "English" {
		t.Errorf("unexpected default language: %q", conf.App.DefaultLanguage)
	}
	if conf.App.LogPath == "" {
		t.Error("expected a default log path")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("ParsesFile", func(t *testing.T) {
		path := th.TempPath(t, "config.toml")
		th.MustWriteFile(t, path, `
[storage]
users_path = "/data/users.json"
books_path = "/data/reading.json"
session_path = "/data/config.json"

[app]
default_language = "Hindi"
log_path = "/tmp/app.log"
`)

		conf, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if conf.Storage.UsersPath != "/data/users.json" {
			t.Errorf("unexpected users path: %q", conf.Storage.UsersPath)
		}
		if conf.App.DefaultLanguage != "Hindi" {
			t.Errorf("unexpected language: %q", conf.App.DefaultLanguage)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(th.TempPath(t, "absent.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("BadTOML", func(t *testing.T) {
		path := th.TempPath(t, "config.toml")
		th.MustWriteFile(t, path, "[storage\nusers_path = ")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("WritesExample", func(t *testing.T) {
		path := th.TempPath(t, "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		// The written file must round-trip through LoadConfig.
		conf, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if conf.Storage.UsersPath != DefaultConfig().Storage.UsersPath {
			t.Errorf("written config diverges from defaults: %q", conf.Storage.UsersPath)
		}
	})

	t.Run("RefusesOverwrite", func(t *testing.T) {
		path := th.TempPath(t, "config.toml")
		th.MustWriteFile(t, path, "# existing")

		err := CreateConfigFile(path)
		if err == nil {
			t.Fatal("expected an error when the file exists")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("unexpected error: %v", err)
		}
		if got := th.MustReadFile(t, path); got != "# existing" {
			t.Error("existing file must not be overwritten")
		}
	})
}
