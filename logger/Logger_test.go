package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestNewLoggerDiscardsUntilInit(t *testing.T) {
	l := New()
	if l.entry.Out == nil {
		t.Fatalf("expected an output writer")
	}
	if l.entry.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected default level info, got %s", l.entry.GetLevel())
	}
}

func TestInitWritesJSONToRotatingFile(t *testing.T) {
	dir := t.TempDir()
	props := "logFilename=game.log\nmaxSize=1\nmaxBackups=1\nmaxAge=1\ncompress=false\nlevel=Debug\n"
	if err := os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(props), 0o644); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	l := New()
	if err := l.Init(afero.NewOsFs(), dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	l.Debug("paddle hit")
	l.Info("match started")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "game.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"paddle hit"`) || !strings.Contains(out, `"msg":"match started"`) {
		t.Fatalf("expected both JSON lines in log file, got %q", out)
	}
	if !strings.Contains(out, `"level":"debug"`) {
		t.Fatalf("expected debug level entry, got %q", out)
	}
}

func TestInitMissingPropertiesFails(t *testing.T) {
	l := New()
	if err := l.Init(afero.NewMemMapFs(), "/conf"); err == nil {
		t.Fatalf("expected error for missing logger.properties")
	}
}

func TestLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel("Warn")

	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn should be written: %q", buf.String())
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != logrus.InfoLevel {
		t.Fatalf("got %s want info", got)
	}
	if got := parseLevel("Trace"); got != logrus.TraceLevel {
		t.Fatalf("got %s want trace", got)
	}
}
