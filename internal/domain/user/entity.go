package user

import (
	"github.com/google/uuid"
)

// User identity record. Created at registration, never updated or
// deleted through this service. The creation timestamp lives on the
// stored row only, so the entity does not carry it.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	displayName  string
	role         Role
}

func NewUser(username Username, passwordHash, displayName string) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         RoleAdmin,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Role() Role           { return u.role }
