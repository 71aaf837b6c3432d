package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.renderID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     levelOf(message),
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

func levelOf(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(lower, "error"):
		return "error"
	case strings.HasPrefix(lower, "warning"):
		return "warning"
	}
	return "info"
}

// consoleStore keeps the console output of the most recent renders
type consoleStore struct {
	mu       sync.Mutex
	limit    int
	order    []string
	messages map[string][]ConsoleMessage
}

func newConsoleStore(limit int) *consoleStore {
	return &consoleStore{
		limit:    limit,
		messages: make(map[string][]ConsoleMessage),
	}
}

// collect drains everything currently buffered in ch under renderID,
// evicting the oldest render once the limit is reached
func (cs *consoleStore) collect(renderID string, ch <-chan ConsoleMessage) {
	collected := []ConsoleMessage{}
	for drained := false; !drained; {
		select {
		case msg := <-ch:
			collected = append(collected, msg)
		default:
			drained = true
		}
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, exists := cs.messages[renderID]; !exists {
		cs.order = append(cs.order, renderID)
	}
	cs.messages[renderID] = collected

	for len(cs.order) > cs.limit {
		delete(cs.messages, cs.order[0])
		cs.order = cs.order[1:]
	}
}

func (cs *consoleStore) get(renderID string) ([]ConsoleMessage, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	messages, ok := cs.messages[renderID]
	return messages, ok
}
