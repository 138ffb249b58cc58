package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"signup/internal/models"

	"github.com/google/uuid"
)

// MemoryAccountRepository is an in-memory implementation of AccountRepository.
// Email and username are unique, matching the indexes of the SQL schema.
type MemoryAccountRepository struct {
	accounts   map[string]models.Account
	byEmail    map[string]string
	byUsername map[string]string
	mu         sync.RWMutex
}

// NewMemoryAccountRepository creates a new instance of MemoryAccountRepository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts:   make(map[string]models.Account),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

// CountMatching counts accounts sharing the given email or username.
func (r *MemoryAccountRepository) CountMatching(ctx context.Context, email, username string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, a := range r.accounts {
		if a.Email == email || a.Username == username {
			count++
		}
	}
	return count, nil
}

// Insert adds a new account, rejecting duplicates with ErrDuplicateKey.
func (r *MemoryAccountRepository) Insert(ctx context.Context, account *models.Account) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stored := *account
	stored.Email = strings.Clone(account.Email)
	stored.Username = strings.Clone(account.Username)
	stored.PasswordHash = strings.Clone(account.PasswordHash)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return 0, ErrDuplicateKey
	}
	if _, ok := r.byUsername[account.Username]; ok {
		return 0, ErrDuplicateKey
	}

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	stored.ID = account.ID
	stored.CreatedAt = account.CreatedAt

	r.accounts[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	r.byUsername[stored.Username] = stored.ID
	return 1, nil
}
