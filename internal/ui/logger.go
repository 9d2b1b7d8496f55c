package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ToastLogger wraps log-style calls and emits transient toasts in the UI,
// with rate limiting to avoid storms.
type ToastLogger struct {
	app         *App
	mu          sync.Mutex
	lastToast   time.Time
	minInterval time.Duration
	lastText    string
}

func NewToastLogger(app *App, minInterval time.Duration) *ToastLogger {
	return &ToastLogger{app: app, minInterval: minInterval}
}

// Errorf shows a red toast for the formatted error message if allowed by the
// rate limiter.
func (l *ToastLogger) Errorf(format string, args ...any) tea.Cmd {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	l.mu.Lock()
	now := time.Now()
	// Suppress duplicates of the same text for 30s.
	suppressDup := msg == l.lastText && now.Sub(l.lastToast) < 30*time.Second
	allow := now.Sub(l.lastToast) >= l.minInterval && !suppressDup
	if allow {
		l.lastToast = now
		l.lastText = msg
	}
	l.mu.Unlock()
	if !allow {
		return nil
	}
	return l.app.ShowErrorToast(msg, 5*time.Second)
}

// Infof shows a toast without rate limiting. Used for action feedback
// rather than errors.
func (l *ToastLogger) Infof(format string, args ...any) tea.Cmd {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	return l.app.ShowToast(msg, 3*time.Second)
}
