package identity

import (
	"context"

	"github.com/recoffee/backend/internal/domain/shared"
)

// UserRepository defines read access to users
type UserRepository interface {
	// FindByID returns shared.ErrUserNotFound when no row matches
	FindByID(ctx context.Context, id int) (*User, error)

	// FindAll returns up to page.Limit users starting at page.Skip
	FindAll(ctx context.Context, page shared.OffsetPage) ([]*User, error)
}
