// Package user provides registration and authentication use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// ErrUsernameTaken is returned when registering with an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials is returned when authentication fails. The message
// never reveals whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// PasswordPolicy validates candidate passwords before hashing.
type PasswordPolicy interface {
	ValidatePassword(password, username string) error
}

// RegisterInput represents the input parameters for creating a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Service provides user management use cases.
type Service struct {
	Repo   repository.UserRepository
	Policy PasswordPolicy
}

// Register validates the input, hashes the password with bcrypt, and stores
// the new user. Returns ErrUsernameTaken when the name is already in use.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if s.Policy != nil {
		if err := s.Policy.ValidatePassword(in.Password, in.Username); err != nil {
			return nil, err
		}
	}

	taken, err := s.Repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RecordUserRegistered()
	slog.InfoContext(ctx, "User registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return user, nil
}

// Authenticate verifies a username/password pair and returns the user on
// success. A missing user and a wrong password both yield
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user == nil {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$000000000000000000000uGyUvPeUzGKAfLLy7kTli.PBComAbB2"),
			[]byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get retrieves a user by ID. Returns entity.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrNotFound
	}
	return user, nil
}
