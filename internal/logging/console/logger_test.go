package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/almanaclabs/yoastseo/internal/logging"
	"github.com/almanaclabs/yoastseo/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 2, 3, 10, 30, 0, 250000000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("yoast.blocks")
	logger = logging.WithFields(logger, map[string]any{"module": "yoast.blocks"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"pass_id": "pass-7",
	})
	logger = logger.WithContext(ctx)

	blockID := uuid.MustParse("3adbb2f9-68c1-4c4c-a08f-099de3cbd49c")
	logger.Info("block.validated",
		"block_id", blockID,
		"status", "valid",
	)

	got := strings.TrimSpace(buf.String())
	want := "2026-02-03T10:30:00.25Z INFO block.validated block_id=3adbb2f9-68c1-4c4c-a08f-099de3cbd49c logger=yoast.blocks module=yoast.blocks pass_id=pass-7 status=valid"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("yoast.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
	if strings.Contains(lines[0], "ignored.debug") {
		t.Fatalf("unexpected debug log present: %s", lines[0])
	}
}

func TestConsoleLogger_DanglingArgKept(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
	})

	provider.GetLogger("yoast.test").Info("odd.args", "count", 3, "dangling")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "count=3") {
		t.Fatalf("expected paired field, got %s", line)
	}
	if !strings.Contains(line, "arg=dangling") {
		t.Fatalf("expected dangling value to be kept, got %s", line)
	}
}
