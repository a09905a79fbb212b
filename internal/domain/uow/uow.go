package uow

import (
	"context"

	"wayfarer-backend/internal/domain/comment"
	"wayfarer-backend/internal/domain/request"
	"wayfarer-backend/internal/domain/user"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Users    user.Repository
	Requests request.Repository
	Comments comment.Repository
}

// UnitOfWork scopes compound writes: everything inside fn commits together or
// rolls back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
