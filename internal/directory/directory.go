// Package directory holds the in-memory registry of registered identities
// backing duplicate-email detection for the signup flow.
package directory

import "sync"

// Directory answers membership queries and accepts new registrations. It is
// injected into the signup controller so a persistent implementation can be
// substituted without touching the wizard logic.
type Directory interface {
	// Exists reports whether an identity with the given email is registered.
	// Comparison is case-insensitive. Pure query, no side effects.
	Exists(email string) bool

	// Register appends a new identity. It fails with ErrDuplicateEmail when
	// an identity with the same normalized email is already present; the
	// directory is unchanged on failure.
	Register(identity Identity) error

	// Len returns the number of registered identities.
	Len() int

	// List returns registered identities in insertion order. The order
	// carries no meaning beyond iteration and tests.
	List() []Identity
}

// InMemory is the session-local Directory implementation. State is lost on
// restart; there is no durable registration store.
type InMemory struct {
	mu      sync.RWMutex
	entries []Identity
	byEmail map[string]struct{} // normalized email set
}

// NewInMemory creates a directory pre-seeded with the given identities.
// Seed entries whose normalized email repeats an earlier entry are dropped,
// preserving the no-duplicates invariant.
func NewInMemory(seed ...Identity) *InMemory {
	d := &InMemory{
		byEmail: make(map[string]struct{}, len(seed)),
	}
	for _, identity := range seed {
		_ = d.Register(identity)
	}
	return d
}

// Exists reports whether the email is already registered, case-insensitively.
func (d *InMemory) Exists(email string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.byEmail[NormalizeEmail(email)]
	return ok
}

// Register appends the identity unless its email is already taken. The
// membership check and the append happen under one lock so no other
// registration can interleave between them.
func (d *InMemory) Register(identity Identity) error {
	key := NormalizeEmail(identity.Email)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byEmail[key]; ok {
		return ErrDuplicateEmail
	}
	d.byEmail[key] = struct{}{}
	d.entries = append(d.entries, identity)
	return nil
}

// Len returns the number of registered identities.
func (d *InMemory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// List returns a copy of the registered identities in insertion order.
func (d *InMemory) List() []Identity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Identity, len(d.entries))
	copy(out, d.entries)
	return out
}

var _ Directory = (*InMemory)(nil)
