package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"signup/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
// The *gorm.DB must be opened with TranslateError enabled so that unique
// violations surface as gorm.ErrDuplicatedKey.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// CountMatching counts accounts sharing the given email or username.
func (r *GORMAccountRepository) CountMatching(ctx context.Context, email, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count matching accounts: %w", err)
	}
	return count, nil
}

// Insert creates a new account in the database.
func (r *GORMAccountRepository) Insert(ctx context.Context, account *models.Account) (int64, error) {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	res := r.db.WithContext(ctx).Create(account)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("failed to insert account: %w", ErrDuplicateKey)
		}
		return 0, fmt.Errorf("failed to insert account: %w", res.Error)
	}
	return res.RowsAffected, nil
}
