package usecase

import (
	"github.com/Pruthvi98/klaw/internal/domain/user"

	"github.com/google/uuid"
)

// ActorContext is the authenticated caller identity, threaded explicitly
// through every operation. There is no ambient security context: anything a
// usecase needs to know about the caller travels in here.
type ActorContext struct {
	UserID   uuid.UUID
	Username string
	TeamID   int32
	TenantID int32
	Role     user.Role
}
