package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for contact message storage
type Repository interface {
	Create(ctx context.Context, req *CreateMessageRequest) (*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
}

// InMemoryRepository stores contact messages in memory
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages map[string]*Message
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		messages: make(map[string]*Message),
	}
}

// Create stores a new contact message
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateMessageRequest) (*Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg := &Message{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.messages[msg.ID] = msg
	r.mu.Unlock()

	return msg, nil
}

// GetByID retrieves a message by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}

	return msg, nil
}

var _ Repository = (*InMemoryRepository)(nil)
