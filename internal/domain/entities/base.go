package entities

import (
	"time"

	"github.com/google/uuid"
)

// now is swapped in tests that assert on timestamps.
var now = func() time.Time {
	return time.Now().UTC()
}

// Base carries identity, audit timestamps and the optimistic-locking version
// shared by every persisted entity.
//
// Version starts at 1 and is bumped by the persistence gateway on each
// committed update; the gateway rejects an update whose version no longer
// matches the stored one.
type Base struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	ts := now()
	return Base{
		ID:        uuid.NewString(),
		Version:   1,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func (b *Base) touch() {
	b.UpdatedAt = now()
}
