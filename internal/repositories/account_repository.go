package repositories

import (
	"context"
	"errors"

	"signup/internal/models"
)

// ErrDuplicateKey is returned when an insert violates the email or username
// uniqueness constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// AccountRepository defines the datastore operations needed to register accounts.
type AccountRepository interface {
	// CountMatching returns the number of accounts whose email equals email
	// or whose username equals username.
	CountMatching(ctx context.Context, email, username string) (int64, error)
	// Insert stores a new account and returns the number of rows affected.
	Insert(ctx context.Context, account *models.Account) (int64, error)
}
