// Package user holds identity. Users authenticate with email+password and
// carry a role that gates deletion and an optional team membership used by
// board filtering.
package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"orgjet/internal/shared/biztime"
	"orgjet/internal/shared/constants"
)

var validRoles = map[string]bool{
	constants.RoleRequester:   true,
	constants.RoleCoordinator: true,
	constants.RoleAssignee:    true,
	constants.RoleAdmin:       true,
}

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         string
	teamID       *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, plainPassword, role string, bcryptCost int) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(plainPassword) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: string(hash),
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role string,
	teamID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		teamID:       teamID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() string         { return u.role }
func (u *User) TeamID() *uint        { return u.teamID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetTeam(teamID uint) {
	if teamID != 0 {
		u.teamID = &teamID
		u.updatedAt = biztime.NowUTC()
	}
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)) == nil
}
