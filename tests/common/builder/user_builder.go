//go:build unit || e2e

package builder

import (
	"coupon-api/internal/domain/user"
	"coupon-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	PasswordHash string
	DisplayName  string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "testadmin",
		PasswordHash: "hashed_password",
		DisplayName:  "Test Admin",
		Role:         string(user.RoleAdmin),
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, u.PasswordHash, u.DisplayName), nil
}

func (u *UserBuilder) BuildReadModel() *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:          uuid.New(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}
