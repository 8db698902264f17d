package readmodel

import (
	"github.com/google/uuid"
)

// UserRM is the public projection of a user. It deliberately has no
// password field at all.
type UserRM struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
}
