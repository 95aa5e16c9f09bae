package spline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("hello", "x", 0.5)
	if !strings.Contains(buf.String(), "msg=hello x=0.5") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
