package editor

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds one State per buffer for hosts that edit more than one
// buffer per session. The engine itself is single-buffer and stateless;
// the registry just keys states by ID and serializes access to each entry,
// keeping the one-command-at-a-time precondition per buffer.
type Registry struct {
	mu      sync.Mutex
	buffers map[uuid.UUID]State
}

// NewRegistry returns an empty buffer registry.
func NewRegistry() *Registry {
	return &Registry{buffers: make(map[uuid.UUID]State)}
}

// Open registers a new buffer with the given initial lines and returns its ID.
func (r *Registry) Open(lines []string) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.buffers[id] = NewStateFromLines(lines)
	r.mu.Unlock()
	return id
}

// Get returns the current state of the buffer.
func (r *Registry) Get(id uuid.UUID) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.buffers[id]
	return s, ok
}

// Dispatch applies cmd to the identified buffer and returns the new state.
// Unknown IDs are reported, not errors.
func (r *Registry) Dispatch(id uuid.UUID, cmd Command) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.buffers[id]
	if !ok {
		return State{}, false
	}
	s = Apply(s, cmd)
	r.buffers[id] = s
	return s, true
}

// Close removes the buffer from the registry.
func (r *Registry) Close(id uuid.UUID) {
	r.mu.Lock()
	delete(r.buffers, id)
	r.mu.Unlock()
}

// Len returns the number of open buffers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffers)
}
