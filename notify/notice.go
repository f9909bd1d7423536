package notify

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Level classifies a notice for presentation purposes.
type Level string

const (
	// LevelInfo is an informational notice.
	LevelInfo Level = "info"
	// LevelWarning is a recoverable problem the user should know about.
	LevelWarning Level = "warning"
	// LevelError is a failure that interrupted what the user was doing.
	LevelError Level = "error"
)

// Notice is a single transient message for the user.
type Notice struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// Notifier receives notices emitted by the SDK.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// NoOpNotifier discards every notice. It is the default sink.
type NoOpNotifier struct{}

// Notify implements [Notifier].
func (NoOpNotifier) Notify(context.Context, Notice) {}

// ChannelNotifier buffers notices on a channel for a UI event loop to drain.
type ChannelNotifier struct {
	notices chan Notice
}

// NewChannelNotifier creates a channel sink with the given buffer size.
func NewChannelNotifier(buffer int) *ChannelNotifier {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelNotifier{
		notices: make(chan Notice, buffer),
	}
}

// Notify implements [Notifier]. It blocks only until ctx is done when the
// buffer is full.
func (n *ChannelNotifier) Notify(ctx context.Context, notice Notice) {
	select {
	case n.notices <- notice:
	case <-ctx.Done():
	}
}

// Notices exposes the sink's channel for consumption.
func (n *ChannelNotifier) Notices() <-chan Notice {
	return n.notices
}

// JSONWriterNotifier writes one JSON object per notice to an io.Writer,
// typically a log file.
type JSONWriterNotifier struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterNotifier creates a writer sink.
func NewJSONWriterNotifier(w io.Writer) *JSONWriterNotifier {
	return &JSONWriterNotifier{
		writer: w,
	}
}

// Notify implements [Notifier].
func (n *JSONWriterNotifier) Notify(_ context.Context, notice Notice) {
	if n == nil || n.writer == nil {
		return
	}
	data, err := json.Marshal(notice)
	if err != nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = n.writer.Write(data)
	_, _ = n.writer.Write([]byte("\n"))
}
