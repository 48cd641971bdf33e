package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithFieldsFlowThroughContext(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithCartSession(ctx, "sess-456")
	logg.Info(ctx, "cart.updated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v", err)
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("missing request_id: %v", entry)
	}
	if entry["cart_session"] != "sess-456" {
		t.Fatalf("missing cart_session: %v", entry)
	}
	if entry["service"] != "test" {
		t.Fatalf("missing service field: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if ParseLevel("debug") != zerolog.DebugLevel {
		t.Fatal("expected debug level")
	}
	if ParseLevel("") != zerolog.InfoLevel {
		t.Fatal("empty level should default to info")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Fatal("invalid level should default to info")
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "boom", nil)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v", err)
	}
	if entry["stack"] == nil || entry["stack"] == "" {
		t.Fatal("expected stack trace on error logs")
	}
}
