package readmodel

import "github.com/google/uuid"

// AuthorizedUserRM is the read model handed to the auth flow and session
// endpoints.
type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	TeamID   int32     `json:"team_id"`
	TenantID int32     `json:"tenant_id"`
	IsActive bool      `json:"is_active"`
}
