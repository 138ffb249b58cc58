package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"signup/internal/models"
	"signup/internal/repositories"
	"signup/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// EventPublisher announces successful registrations to other systems.
type EventPublisher interface {
	PublishAccountRegistered(ctx context.Context, account models.Account) error
}

// maxPasswordBytes is the longest input bcrypt accepts; longer passwords are
// hashed on their leading bytes.
const maxPasswordBytes = 72

// PasswordHasher turns a plaintext password into a salted one-way digest.
type PasswordHasher func(password []byte, cost int) ([]byte, error)

// RegistrationService handles the business logic of creating accounts.
type RegistrationService struct {
	accountRepo repositories.AccountRepository
	validator   *validation.Validator
	hash        PasswordHasher
	hashCost    int
	publisher   EventPublisher
	logger      *slog.Logger
}

// Option customizes a RegistrationService.
type Option func(*RegistrationService)

// WithHashCost sets the bcrypt cost used for new password hashes.
func WithHashCost(cost int) Option {
	return func(s *RegistrationService) { s.hashCost = cost }
}

// WithPasswordHasher replaces bcrypt.GenerateFromPassword.
func WithPasswordHasher(h PasswordHasher) Option {
	return func(s *RegistrationService) { s.hash = h }
}

// WithEventPublisher publishes an event after every successful registration.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *RegistrationService) { s.publisher = p }
}

// WithLogger sets the logger that receives internal error details.
func WithLogger(l *slog.Logger) Option {
	return func(s *RegistrationService) { s.logger = l }
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(accountRepo repositories.AccountRepository, opts ...Option) *RegistrationService {
	s := &RegistrationService{
		accountRepo: accountRepo,
		validator:   validation.New(),
		hash:        bcrypt.GenerateFromPassword,
		hashCost:    bcrypt.DefaultCost,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the form, checks for an existing account with the same
// email or username, and stores a new account with a hashed password.
//
// The returned error wraps one of the models.Err* sentinels; use
// models.OutcomeOf to obtain the user-visible outcome. Datastore details are
// logged and never exposed through the sentinel.
func (s *RegistrationService) Register(ctx context.Context, form models.RegistrationForm) (*models.Account, error) {
	form = validation.Normalize(form)
	if err := s.validator.Validate(form); err != nil {
		return nil, err
	}

	count, err := s.accountRepo.CountMatching(ctx, form.Email, form.Username)
	if err != nil {
		s.logger.ErrorContext(ctx, "duplicate check failed", "username", form.Username, "error", err)
		return nil, fmt.Errorf("%w: duplicate check failed", models.ErrPersistence)
	}
	if count > 0 {
		return nil, models.ErrDuplicateAccount
	}

	password := []byte(form.Password)
	if len(password) > maxPasswordBytes {
		password = password[:maxPasswordBytes]
	}
	hashed, err := s.hash(password, s.hashCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hashing failed", "username", form.Username, "error", err)
		return nil, fmt.Errorf("%w: password hashing failed", models.ErrPersistence)
	}

	account := &models.Account{
		Email:        form.Email,
		Username:     form.Username,
		PasswordHash: string(hashed),
	}

	rows, err := s.accountRepo.Insert(ctx, account)
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		// Another request registered the same email or username after our check.
		s.logger.WarnContext(ctx, "concurrent registration lost the race", "username", form.Username)
		return nil, models.ErrDuplicateAccount
	case err != nil:
		s.logger.ErrorContext(ctx, "account insert failed", "username", form.Username, "error", err)
		return nil, fmt.Errorf("%w: insert failed", models.ErrPersistence)
	case rows != 1:
		s.logger.ErrorContext(ctx, "account insert affected unexpected rows", "username", form.Username, "rows", rows)
		return nil, fmt.Errorf("%w: insert affected %d rows", models.ErrPersistence, rows)
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", account.ID, "username", account.Username)

	if s.publisher != nil {
		if err := s.publisher.PublishAccountRegistered(ctx, *account); err != nil {
			s.logger.WarnContext(ctx, "failed to publish account registered event", "account_id", account.ID, "error", err)
		}
	}

	return account, nil
}
