//go:build unit || e2e

package builder

import (
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/readmodel"

	"github.com/Pruthvi98/klaw/internal/domain/user"
	"github.com/google/uuid"
)

type UserBuilder struct {
	Username string
	Email    string
	Role     string
	TeamID   int32
	TenantID int32
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "user",
		TeamID:   8,
		TenantID: 101,
		IsActive: true,
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithTeamID(teamID int32) *UserBuilder {
	u.TeamID = teamID
	return u
}

func (u *UserBuilder) WithTenantID(tenantID int32) *UserBuilder {
	u.TenantID = tenantID
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       uuid.New(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		TeamID:   u.TeamID,
		TenantID: u.TenantID,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() usecase.ActorContext {
	return usecase.ActorContext{
		UserID:   uuid.New(),
		Username: u.Username,
		TeamID:   u.TeamID,
		TenantID: u.TenantID,
		Role:     user.Role(u.Role),
	}
}
