// Package notify is the client's notice surface, the terminal counterpart
// of the web client's toast notifications. Decision logic emits notices
// through the Notifier interface; adapters decide how they reach the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/itbsclubs/clubdesk/pkg/idx"
)

// Level classifies a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is one dismissible user-facing message.
type Notice struct {
	ID    idx.ID
	Level Level
	Text  string
}

// Notifier surfaces notices to the user. Implementations must be safe for
// concurrent use and must never block on user interaction.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// New builds a notice with a fresh ID.
func New(level Level, text string) Notice {
	return Notice{ID: idx.New(), Level: level, Text: text}
}

// Info is shorthand for New(LevelInfo, ...).
func Info(text string) Notice { return New(LevelInfo, text) }

// Success is shorthand for New(LevelSuccess, ...).
func Success(text string) Notice { return New(LevelSuccess, text) }

// Error is shorthand for New(LevelError, ...).
func Error(text string) Notice { return New(LevelError, text) }

// WriterNotifier prints notices to a writer (the terminal).
type WriterNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewWriterNotifier creates a notifier writing to out and mirroring notices
// to the logger at debug level.
func NewWriterNotifier(out io.Writer, logger *slog.Logger) *WriterNotifier {
	return &WriterNotifier{out: out, logger: logger}
}

func (w *WriterNotifier) Notify(ctx context.Context, n Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.out, "[%s] %s\n", n.Level, n.Text)
	w.logger.DebugContext(ctx, "notice", "id", n.ID.String(), "level", n.Level.String(), "text", n.Text)
}

// Recorder collects notices for tests.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}
