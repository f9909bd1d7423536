package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestChannelNotifierDeliversInOrder(t *testing.T) {
	sink := NewChannelNotifier(4)
	ctx := context.Background()

	sink.Notify(ctx, Notice{Level: LevelWarning, Message: "first"})
	sink.Notify(ctx, Notice{Level: LevelError, Message: "second"})

	got := <-sink.Notices()
	if got.Message != "first" {
		t.Fatalf("expected first, got %q", got.Message)
	}
	got = <-sink.Notices()
	if got.Message != "second" {
		t.Fatalf("expected second, got %q", got.Message)
	}
}

func TestChannelNotifierFullBufferRespectsContext(t *testing.T) {
	sink := NewChannelNotifier(1)
	sink.Notify(context.Background(), Notice{Message: "fills the buffer"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		sink.Notify(ctx, Notice{Message: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a cancelled context")
	}
}

func TestJSONWriterNotifierWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterNotifier(&buf)

	sink.Notify(context.Background(), Notice{
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Level:     LevelWarning,
		Message:   "session expired",
	})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var decoded Notice
	if err := json.Unmarshal(lines[0], &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Message != "session expired" || decoded.Level != LevelWarning {
		t.Fatalf("unexpected notice: %+v", decoded)
	}
}

func TestNoOpNotifierDoesNothing(t *testing.T) {
	var sink NoOpNotifier
	sink.Notify(context.Background(), Notice{Message: "ignored"})
}
