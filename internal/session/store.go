// Package session keeps per-visitor wizard state between requests. The
// browser original held one wizard per page load; the service equivalent is a
// short-lived session keyed by a generated ID.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// State is the serializable snapshot of one wizard session. Controllers are
// rehydrated from it on every request.
type State struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"` // "signup" or "booking"
	Step      int               `json:"step"`
	Form      map[string]string `json:"form,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Store persists wizard session state.
type Store interface {
	Create(ctx context.Context, kind string) (*State, error)
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}

// Memory is the default Store: session state lives in process memory and is
// lost on restart, matching the original page-load lifetime.
type Memory struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]*State
}

// NewMemory creates an in-memory store. Sessions idle longer than ttl are
// dropped lazily on access; ttl <= 0 disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:      ttl,
		sessions: make(map[string]*State),
	}
}

// Create starts a new session at step 0.
func (m *Memory) Create(ctx context.Context, kind string) (*State, error) {
	now := time.Now().UTC()
	state := &State{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[state.ID] = cloneState(state)
	m.mu.Unlock()

	return state, nil
}

// Get returns a copy of the session state.
func (m *Memory) Get(ctx context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && time.Since(state.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}
	return cloneState(state), nil
}

// Save stores the state, stamping UpdatedAt.
func (m *Memory) Save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	m.sessions[state.ID] = cloneState(state)
	m.mu.Unlock()

	return nil
}

// Delete removes the session. Deleting an unknown ID is not an error.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

func cloneState(state *State) *State {
	out := *state
	if state.Form != nil {
		out.Form = make(map[string]string, len(state.Form))
		for k, v := range state.Form {
			out.Form[k] = v
		}
	}
	return &out
}

var _ Store = (*Memory)(nil)
