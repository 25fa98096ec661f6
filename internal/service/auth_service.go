package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskconnect/internal/auth"
	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, username, password, fullName string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer) AuthService {
	return &authService{
		users:  users,
		issuer: issuer,
	}
}

// Register creates a new user with a hashed password. Email uniqueness is
// checked before username uniqueness; each collision has its own error.
func (s *authService) Register(ctx context.Context, email, username, password, fullName string, role model.Role) (*model.User, error) {
	if role == "" {
		role = model.RoleClient
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	existing, err = s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-checks and hit
		// the unique index instead; report it as the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if dup, ferr := s.users.FindByEmail(ctx, email); ferr == nil && dup != nil {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token whose subject
// is the account's username. Unknown email and wrong password produce the
// same error so login failures do not reveal whether the account exists.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
