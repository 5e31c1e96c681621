package users

import "context"

// UserService defines account management and authentication
type UserService interface {
	// Register creates an active, non-staff user
	Register(ctx context.Context, username, email, password string) (*User, error)

	// CreateStaff creates an active staff user
	CreateStaff(ctx context.Context, username, email, password string) (*User, error)

	// Authenticate checks the credentials, records the login and issues a token
	Authenticate(ctx context.Context, username, password string) (*Session, error)

	// ValidateToken returns the active user a token was issued for
	ValidateToken(ctx context.Context, token string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// List returns all users, newest first
	List(ctx context.Context) ([]*User, error)
}

// UserRepository defines the persistence of users
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByUsername retrieves a User by username
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByEmail retrieves a User by email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List lists all Users, newest first
	List(ctx context.Context) ([]*User, error)
	// Update saves a modified User
	Update(ctx context.Context, user *User) error
}
