package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides identity and timestamps.
// UpdatedAt stays nil until the first mutation after creation.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Touch stamps UpdatedAt with the current UTC time.
// The stamp is kept strictly after CreatedAt even when the clock has not advanced.
func (e *BaseEntity) Touch() {
	now := Now()
	if !now.After(e.CreatedAt) {
		now = e.CreatedAt.Add(time.Microsecond)
	}
	e.UpdatedAt = &now
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: Now(),
	}
}

// Now returns the current time in UTC truncated to microseconds, the
// precision the store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
