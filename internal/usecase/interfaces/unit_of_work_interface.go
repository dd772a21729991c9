package interfaces

import (
	"context"

	"revenda_veiculos/internal/domain/entities"
)

// IUnitOfWork commits a ChangeSet atomically: every insert, update and check
// succeeds or nothing is written.
//
// Commit returns entities.ErrDuplicateKey when a unique key is already taken
// and entities.ErrConcurrentUpdate when a listed entity changed since it was
// loaded. On success the Version of every updated entity is bumped.
type IUnitOfWork interface {
	Commit(ctx context.Context, changes entities.ChangeSet) error
}
