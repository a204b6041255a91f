package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for appointment storage
type Repository interface {
	Create(ctx context.Context, form Form) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
}

// InMemoryRepository stores appointments in memory, insertion-ordered.
type InMemoryRepository struct {
	mu           sync.RWMutex
	appointments []*Appointment
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create records a new appointment request
func (r *InMemoryRepository) Create(ctx context.Context, form Form) (*Appointment, error) {
	appt := &Appointment{
		ID:            uuid.New().String(),
		Service:       form.Service,
		PreferredDate: form.PreferredDate,
		PreferredTime: form.PreferredTime,
		Name:          form.Name,
		Phone:         form.Phone,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.appointments = append(r.appointments, appt)
	r.mu.Unlock()

	return appt, nil
}

// List returns all appointments in insertion order
func (r *InMemoryRepository) List(ctx context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

var _ Repository = (*InMemoryRepository)(nil)
