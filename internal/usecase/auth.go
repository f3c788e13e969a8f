package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
	pkgAuth "github.com/spicemart/spicemart/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with name/email/password and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", domainErrors.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrValidation, minPasswordLength)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update; empty fields keep their
// current values.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID, name, password, address string) (*model.User, error) {
	current, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = current.Name
	}
	if address == "" {
		address = current.Address
	}

	hash := current.PasswordHash
	if password != "" {
		if len(password) < minPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrValidation, minPasswordLength)
		}
		if hash, err = u.hasher.Hash(password); err != nil {
			return nil, err
		}
	}

	return u.users.Update(ctx, userID, name, hash, address)
}
