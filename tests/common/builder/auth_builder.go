//go:build unit || e2e

package builder

import (
	reqdto "coupon-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
	Name     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "testadmin",
		Password: "password123",
		Name:     "Test Admin",
	}
}

func (a *AuthBuilder) WithUsername(username string) *AuthBuilder {
	a.Username = username
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: a.Username,
		Password: a.Password,
		Name:     a.Name,
	}
}
