package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record passed a warn filter: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "level=warn") {
		t.Errorf("warn record missing: %q", out)
	}
	if !strings.Contains(out, "ts=") || !strings.Contains(out, "caller=") {
		t.Errorf("missing ts or caller: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, "debug")
	level.Debug(Component(logger, "driver")).Log("msg", "tick")
	if !strings.Contains(buf.String(), "component=driver") {
		t.Errorf("component missing: %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, "info")
	prev := GlobalLogger()
	SetGlobalLogger(logger)
	defer SetGlobalLogger(prev)

	level.Info(GlobalLogger()).Log("msg", "global")
	if !strings.Contains(buf.String(), "msg=global") {
		t.Errorf("global logger not used: %q", buf.String())
	}
}
