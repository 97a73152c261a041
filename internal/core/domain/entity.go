package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and lifecycle timestamps shared by every
// persisted type. It is embedded, not inherited: each entity type composes
// it and supplies its own validation.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntity assigns a fresh UUIDv4 identity and sets both timestamps to the
// same UTC instant, so created_at == updated_at at construction.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID satisfies the storage layer's identifiable constraint.
func (e *Entity) GetID() string { return e.ID }

// Touch refreshes updated_at. Called on every successful mutation;
// created_at is never modified after construction.
func (e *Entity) Touch() { e.UpdatedAt = time.Now().UTC() }
