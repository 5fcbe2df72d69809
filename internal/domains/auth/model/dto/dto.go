package dto

import (
	"oasis/infras/jwt"
	guestDto "oasis/internal/domains/guest/model/dto"
)

// SignInRequest carries the identity asserted by the upstream OAuth provider.
// The web frontend completes the OAuth dance; this service trusts its
// callback and issues the session.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	Guest  guestDto.GuestResponse `json:"guest"`
	Tokens jwt.TokenPair          `json:"tokens"`
}
