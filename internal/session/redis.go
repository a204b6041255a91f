package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis stores session state as JSON in Redis, for deployments running more
// than one replica behind a load balancer. Registered identities stay
// in-memory regardless of the session backend.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store. Sessions expire after ttl; ttl <= 0
// means no expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) key(id string) string {
	return fmt.Sprintf("siteforms:session:%s", id)
}

// Create starts a new session at step 0.
func (r *Redis) Create(ctx context.Context, kind string) (*State, error) {
	now := time.Now().UTC()
	state := &State{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Get retrieves session state, returning ErrNotFound for unknown or expired IDs.
func (r *Redis) Get(ctx context.Context, id string) (*State, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &state, nil
}

// Save stores the state and refreshes its TTL.
func (r *Redis) Save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(state.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("session: set: %w", err)
	}
	return nil
}

// Delete removes the session.
func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

var _ Store = (*Redis)(nil)
