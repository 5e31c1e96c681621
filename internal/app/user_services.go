package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/pkg/auth"
	"github.com/tofunames/tofunames/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the username is unknown
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("tofunames-unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to build dummy password hash: %v", err))
	}
	return hash
})

// userService implements the UserService interface
type userService struct {
	userRepo users.UserRepository
	signer   *auth.TokenSigner
	logger   logger.Logger
	now      func() time.Time
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, signer *auth.TokenSigner, logger logger.Logger) (users.UserService, error) {
	if userRepo == nil {
		return nil, errors.New("user repository must not be nil")
	}
	if signer == nil {
		return nil, errors.New("token signer must not be nil")
	}
	return &userService{
		userRepo: userRepo,
		signer:   signer,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Register creates an active, non-staff user
func (s *userService) Register(ctx context.Context, username, email, password string) (*users.User, error) {
	return s.create(ctx, username, email, password, false)
}

// CreateStaff creates an active staff user
func (s *userService) CreateStaff(ctx context.Context, username, email, password string) (*users.User, error) {
	return s.create(ctx, username, email, password, true)
}

func (s *userService) create(ctx context.Context, username, email, password string, staff bool) (*users.User, error) {
	user := &users.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		IsStaff:  staff,
		IsActive: true,
		// placeholder so field validation runs before the expensive hash
		PasswordHash: "-",
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := users.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, user.Username); err == nil {
		return nil, users.ErrUsernameTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, users.ErrEmailTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "username", user.Username, "staff", staff)
	return user, nil
}

// Authenticate checks the credentials, records the login and issues a token
func (s *userService) Authenticate(ctx context.Context, username, password string) (*users.Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			// same bcrypt cost as a wrong password so timing does not reveal usernames
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			return nil, users.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login", "username", username)
		return nil, users.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, users.ErrInactive
	}

	token, expiresAt, err := s.signer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	now := s.now().UTC()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &users.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ValidateToken returns the active user a token was issued for
func (s *userService) ValidateToken(ctx context.Context, token string) (*users.User, error) {
	userID, err := s.signer.Parse(token)
	if err != nil {
		return nil, users.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, users.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, users.ErrUnauthorized
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (s *userService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// List returns all users, newest first
func (s *userService) List(ctx context.Context) ([]*users.User, error) {
	return s.userRepo.List(ctx)
}
