package user

import (
	"time"

	"github.com/google/uuid"
)

// User belongs to exactly one team inside one tenant; both are snapshotted
// onto every request the user creates.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	role         Role
	teamID       int32
	tenantID     int32
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role, teamID, tenantID int32) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		teamID:       teamID,
		tenantID:     tenantID,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	role Role,
	teamID, tenantID int32,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		teamID:       teamID,
		tenantID:     tenantID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) TeamID() int32        { return u.teamID }
func (u *User) TenantID() int32      { return u.tenantID }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
