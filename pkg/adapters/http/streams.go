package http

import (
	"log/slog"
	"sync"
)

// StreamManager fans regeneration events out to SSE subscribers of a project.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{}
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Subscribe returns a buffered channel and the func that detaches it.
func (sm *StreamManager) Subscribe(projectID string) (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[projectID]; !ok {
		sm.subscribers[projectID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[projectID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[projectID]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, projectID)
			}
		}
	}
}

// Subscribers returns the number of listeners on a project.
func (sm *StreamManager) Subscribers(projectID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[projectID])
}

// Broadcast never blocks: slow clients miss messages.
func (sm *StreamManager) Broadcast(projectID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[projectID] {
		select {
		case ch <- msg:
		default:
			slog.Warn("SSE: Client buffer full, dropping message", "project_id", projectID)
		}
	}
}
