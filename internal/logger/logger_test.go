package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

type staticChecker bool

func (s staticChecker) IsVerbose() bool { return bool(s) }

func TestDebugRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewWithWriter("client", staticChecker(false), &buf)
	quiet.Debug("hidden %d", 1)
	quiet.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("Expected no output when not verbose, got %q", buf.String())
	}

	loud := NewWithWriter("client", staticChecker(true), &buf)
	loud.Debug("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("Expected debug line, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "component=client") {
		t.Errorf("Expected component field, got %q", buf.String())
	}
}

func TestErrorAlwaysShown(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("ui", nil, &buf)

	log.Error("analysis failed")
	log.Warn("slow backend")

	out := buf.String()
	if !strings.Contains(out, "analysis failed") || !strings.Contains(out, "slow backend") {
		t.Errorf("Expected warn and error lines, got %q", out)
	}
}

func TestErrorWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("ui", nil, &buf)

	log.ErrorWithFields("request failed", []Field{F("generation", 3), Error(errors.New("boom"))})

	out := buf.String()
	if !strings.Contains(out, "generation=3") {
		t.Errorf("Expected generation field, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("Expected error field, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter("main", staticChecker(true), &buf)

	base.WithComponent("config").Info("loaded")
	if !strings.Contains(buf.String(), "component=config") {
		t.Errorf("Expected derived component, got %q", buf.String())
	}
}

func TestNewWithCallback(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	verbose := false
	log := NewWithCallback("cli", func() bool { return verbose })

	log.Debug("first")
	verbose = true
	log.Debug("second")

	out := buf.String()
	if strings.Contains(out, "first") {
		t.Errorf("Did not expect first line, got %q", out)
	}
	if !strings.Contains(out, "second") {
		t.Errorf("Expected second line, got %q", out)
	}
}
