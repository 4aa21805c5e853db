package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"shelfmate/internal/models"
	"shelfmate/internal/shared"
	th "shelfmate/internal/testing"
)

func testRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	conf := &shared.Config{
		Storage: shared.StorageConfig{
			UsersPath:   filepath.Join(dir, "users.json"),
			BooksPath:   filepath.Join(dir, "reading.json"),
			SessionPath: filepath.Join(dir, "config.json"),
		},
		App: shared.AppConfig{DefaultLanguage: "English", LogPath: filepath.Join(dir, "app.log")},
	}

	var buf bytes.Buffer
	r := NewRunner(RunnerOpts{Config: conf, Logger: shared.NewLogger(io.Discard), Output: &buf})
	return r, &buf
}

func runApp(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "shelfmate", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"shelfmate"}, args...))
}

func seedBook(t *testing.T, r *Runner, title string) {
	t.Helper()
	b := models.Book{Title: title, PagesRead: 40, TotalPages: 200, Status: models.StatusReading, Deadline: "2026-10-01"}
	if _, err := r.books.Add("alice", b); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(RunnerOpts{})
	if r.config == nil || r.logger == nil || r.output == nil {
		t.Error("expected defaults for config, logger and output")
	}
	if r.creds == nil || r.books == nil || r.sessions == nil {
		t.Error("expected wired repositories")
	}
}

func TestRegister(t *testing.T) {
	r, _ := testRunner(t)

	commands := r.register()
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	for _, want := range []string{"setup", "books", "tui"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing command %q in %v", want, names)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	t.Run("Compact", func(t *testing.T) {
		r, buf := testRunner(t)
		if err := r.writeJSON(map[string]int{"count": 2}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := buf.String(); got != "{\"count\":2}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		r, buf := testRunner(t)
		if err := r.writeJSON(map[string]int{"count": 2}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"count\"") {
			t.Errorf("expected indented output: %q", buf.String())
		}
	})

	t.Run("WriterFailure", func(t *testing.T) {
		r, _ := testRunner(t)
		r.output = &th.FWriter{}
		if err := r.writeJSON("x", false); err == nil {
			t.Error("expected an error from the failing writer")
		}
	})
}

func TestBooksList(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		r, buf := testRunner(t)
		seedBook(t, r, "Dune")

		if err := runApp(t, r, "books", "list", "--user", "alice"); err != nil {
			t.Fatalf("books list failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Dune") || !strings.Contains(out, "alice") {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		r, buf := testRunner(t)
		seedBook(t, r, "Dune")

		if err := runApp(t, r, "books", "list", "-u", "alice", "--json"); err != nil {
			t.Fatalf("books list failed: %v", err)
		}
		var books []models.Book
		if err := json.Unmarshal(buf.Bytes(), &books); err != nil {
			t.Fatalf("output should be JSON: %v", err)
		}
		if len(books) != 1 || books[0].Title != "Dune" {
			t.Errorf("unexpected payload: %+v", books)
		}
	})
}

func TestBooksExport(t *testing.T) {
	t.Run("CSVToStdout", func(t *testing.T) {
		r, buf := testRunner(t)
		seedBook(t, r, "Dune")

		if err := runApp(t, r, "books", "export", "-u", "alice"); err != nil {
			t.Fatalf("books export failed: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "Title,PagesRead") {
			t.Errorf("expected CSV output: %q", buf.String())
		}
	})

	t.Run("MarkdownToFile", func(t *testing.T) {
		r, _ := testRunner(t)
		seedBook(t, r, "Dune")
		out := th.TempPath(t, "log.md")

		if err := runApp(t, r, "books", "export", "-u", "alice", "--format", "markdown", "-o", out); err != nil {
			t.Fatalf("books export failed: %v", err)
		}
		th.AssertFileExists(t, out)
		if !strings.Contains(th.MustReadFile(t, out), "# Reading log: alice") {
			t.Error("expected a markdown reading log")
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		r, _ := testRunner(t)

		err := runApp(t, r, "books", "export", "-u", "alice", "--format", "yaml")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestSetupConfig(t *testing.T) {
	r, buf := testRunner(t)
	path := th.TempPath(t, "config.toml")

	if err := runApp(t, r, "setup", "config", "--path", path); err != nil {
		t.Fatalf("setup config failed: %v", err)
	}
	th.AssertFileExists(t, path)
	if !strings.Contains(buf.String(), "Created") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	if err := runApp(t, r, "setup", "config", "--path", path); err == nil {
		t.Error("expected an error when the config already exists")
	}
}

func TestMigrateUsers(t *testing.T) {
	t.Run("ConfiguredPath", func(t *testing.T) {
		r, buf := testRunner(t)
		th.MustWriteFile(t, r.config.Storage.UsersPath, `[{"username": "alice", "password": "czNjcmV0"}]`)

		if err := runApp(t, r, "setup", "migrate-users"); err != nil {
			t.Fatalf("migrate-users failed: %v", err)
		}
		if !strings.Contains(buf.String(), "Converted 1 account(s)") {
			t.Errorf("unexpected output: %q", buf.String())
		}

		ok, err := r.creds.Authenticate("alice", "s3cret")
		if err != nil || !ok {
			t.Errorf("migrated credential should authenticate, ok=%v err=%v", ok, err)
		}
	})

	t.Run("AlreadyMigrated", func(t *testing.T) {
		r, buf := testRunner(t)
		th.MustWriteFile(t, r.config.Storage.UsersPath, `{"alice": "czNjcmV0"}`)

		if err := runApp(t, r, "setup", "migrate-users"); err != nil {
			t.Fatalf("migrate-users failed: %v", err)
		}
		if !strings.Contains(buf.String(), "nothing to do") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})
}
