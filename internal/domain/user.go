package domain

import (
	"context"
	"time"
)

// Role names seeded lazily on first registration.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          *string   `json:"bio,omitempty"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRepository lookups return (nil, nil) when no row matches; the
// usecase layer decides whether absence is an error.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*Role, error)
	Create(ctx context.Context, role *Role) error
	AssignToUser(ctx context.Context, userID, roleID int64) error
	GetForUser(ctx context.Context, userID int64) ([]string, error)
}

type UserUsecase interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, string, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, bio *string) (*User, error)
	UpdatePassword(ctx context.Context, userID int64, newPassword string) error
	DeleteAccount(ctx context.Context, userID int64) error
}
