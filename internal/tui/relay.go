package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// relay forwards controller callbacks into the program's event loop.
// Callbacks may fire from inside Update, where a blocking Program.Send would
// deadlock, so each message is sent from its own goroutine.
type relay struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (r *relay) bind(send func(tea.Msg)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = send
}

func (r *relay) post(msg tea.Msg) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()
	if send != nil {
		go send(msg)
	}
}
