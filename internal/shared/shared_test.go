package shared

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	th "shelfmate/internal/testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info("hello", "user", "alice")
	if out := buf.String(); !strings.Contains(out, "hello") || !strings.Contains(out, "alice") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewLoggerNilWriter(t *testing.T) {
	if NewLogger(nil) == nil {
		t.Error("expected a logger writing to stderr")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Info("started")

	if !strings.Contains(th.MustReadFile(t, path), "started") {
		t.Error("expected the entry to land in the log file")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := WithLogger(NewLogger(&buf), "view", "login")

	l.Info("rendered")
	if out := buf.String(); !strings.Contains(out, "view") {
		t.Errorf("expected the bound key in output: %q", out)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	SetLogLevel(l, log.ErrorLevel)

	l.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info entry should be suppressed, got %q", buf.String())
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("expected unique ids")
	}
	if len(a) != 36 {
		t.Errorf("expected a canonical uuid, got %q", a)
	}
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: title must not be blank", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("wrapped error must match its sentinel")
	}
}
