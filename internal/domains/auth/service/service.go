package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"oasis/infras/jwt"
	"oasis/infras/otel"
	"oasis/internal/domains/auth/model/dto"
	guestDto "oasis/internal/domains/guest/model/dto"
	guestService "oasis/internal/domains/guest/service"
	"oasis/shared/constant"
	"oasis/shared/failure"
)

const (
	msgSignInError       = "Could not sign in"
	msgInvalidRefresh    = "Invalid refresh token"
	msgTokenMintingError = "Could not issue session tokens"
)

type Auth interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.AuthResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.AuthResponse, error)
}

type serviceImpl struct {
	guests guestService.Guest
	jwt    jwt.JWT
	otel   otel.Otel
}

func New(guests guestService.Guest, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		guests: guests,
		jwt:    jwt,
		otel:   otel,
	}
}

// SignIn resolves the asserted identity to a guest, registering a new guest
// on first sign-in, and mints the session token pair.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.guests.GetByEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}

	if guest == nil {
		created, err := s.guests.Create(ctx, guestDto.CreateGuestRequest{
			FullName: req.FullName,
			Email:    req.Email,
		})
		if err != nil {
			return res, err
		}

		guest = &created
	}

	tokens, err := s.jwt.GenerateTokenPair(guest.ID, guest.Email)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to generate token pair")

		return res, failure.InternalFromString(msgTokenMintingError) //nolint:wrapcheck
	}

	res.Guest = *guest
	res.Tokens = *tokens

	return res, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized(msgInvalidRefresh) //nolint:wrapcheck
	}

	guest, err := s.guests.Get(ctx, claims.GuestID)
	if err != nil {
		return res, err
	}

	tokens, err := s.jwt.GenerateTokenPair(guest.ID, guest.Email)
	if err != nil {
		log.Error().Err(err).Int64("guestId", claims.GuestID).Msg("failed to generate token pair")

		return res, failure.InternalFromString(msgTokenMintingError) //nolint:wrapcheck
	}

	res.Guest = guest
	res.Tokens = *tokens

	return res, nil
}
