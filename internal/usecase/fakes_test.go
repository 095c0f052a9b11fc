package usecase

import (
	"context"
	"errors"
	"sync"

	"linenotify/internal/domain/model"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, args ...any) { l.record("debug", msg, args) }
func (l *recordingLogger) Info(_ context.Context, msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) { l.record("error", msg, args) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type staticStore struct {
	credentials []model.Credential
	err         error
}

func (s staticStore) ListCredentials(context.Context) ([]model.Credential, error) {
	return s.credentials, s.err
}

type fakeNotifier struct {
	mu       sync.Mutex
	result   model.DeliveryResult
	tokens   []string
	messages []string
}

func (n *fakeNotifier) Deliver(_ context.Context, token, message string) model.DeliveryResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tokens = append(n.tokens, token)
	n.messages = append(n.messages, message)
	return n.result
}

func (n *fakeNotifier) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

type fakeLogSource struct {
	lines []string
	err   error
}

func (f fakeLogSource) LogTail(context.Context, int) ([]string, error) {
	return f.lines, f.err
}

var errStoreDown = errors.New("store down")
