package response

import "coupon-api/internal/usecase/readmodel"

// LoginResponse is the envelope result of a successful login.
type LoginResponse struct {
	User  *readmodel.UserRM `json:"user"`
	Token string            `json:"token"`
}
