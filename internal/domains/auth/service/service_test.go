package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oasis/infras/jwt"
	jwtMocks "oasis/infras/jwt/mocks"
	"oasis/infras/otel/mocks"
	"oasis/internal/domains/auth/model/dto"
	"oasis/internal/domains/auth/service"
	guestMocks "oasis/internal/domains/guest/mocks"
	guestDto "oasis/internal/domains/guest/model/dto"
	gDto "oasis/shared/dto"
	"oasis/shared/failure"
)

func TestAuthService_SignIn(t *testing.T) {
	req := dto.SignInRequest{
		Email:    "jonas@example.com",
		FullName: "Jonas Schmedtmann",
	}

	existing := guestDto.GuestResponse{
		FullName: "Jonas Schmedtmann",
		Email:    "jonas@example.com",
		Metadata: gDto.Metadata{ID: 42},
	}

	tokens := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
	}

	tests := []struct {
		name      string
		setupMock func(guests *guestMocks.MockGuestService, tokensMock *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "known guest signs in without registration",
			setupMock: func(guests *guestMocks.MockGuestService, tokensMock *jwtMocks.MockJWT) {
				guests.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(&existing, nil)

				tokensMock.EXPECT().
					GenerateTokenPair(int64(42), req.Email).
					Return(tokens, nil)
			},
		},
		{
			name: "first sign-in registers the guest",
			setupMock: func(guests *guestMocks.MockGuestService, tokensMock *jwtMocks.MockJWT) {
				guests.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(nil, nil)

				guests.EXPECT().
					Create(gomock.Any(), guestDto.CreateGuestRequest{
						FullName: req.FullName,
						Email:    req.Email,
					}).
					Return(existing, nil)

				tokensMock.EXPECT().
					GenerateTokenPair(int64(42), req.Email).
					Return(tokens, nil)
			},
		},
		{
			name: "lookup failure propagates",
			setupMock: func(guests *guestMocks.MockGuestService, tokensMock *jwtMocks.MockJWT) {
				guests.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(nil, failure.InternalFromString("Guest could not be loaded"))
			},
			wantErr: true,
		},
		{
			name: "token minting failure",
			setupMock: func(guests *guestMocks.MockGuestService, tokensMock *jwtMocks.MockJWT) {
				guests.EXPECT().
					GetByEmail(gomock.Any(), req.Email).
					Return(&existing, nil)

				tokensMock.EXPECT().
					GenerateTokenPair(int64(42), req.Email).
					Return(nil, errors.New("missing secret"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			guests := guestMocks.NewMockGuestService(ctrl)
			tokensMock := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(guests, tokensMock, mocks.NewOtel())

			tt.setupMock(guests, tokensMock)

			result, err := svc.SignIn(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), result.Guest.ID)
			assert.Equal(t, "access", result.Tokens.AccessToken)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	existing := guestDto.GuestResponse{
		Email:    "jonas@example.com",
		Metadata: gDto.Metadata{ID: 42},
	}

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		guests := guestMocks.NewMockGuestService(ctrl)
		tokensMock := jwtMocks.NewMockJWT(ctrl)

		svc := service.New(guests, tokensMock, mocks.NewOtel())

		tokensMock.EXPECT().
			ValidateToken("refresh", jwt.RefreshToken).
			Return(&jwt.Claims{GuestID: 42, Email: "jonas@example.com"}, nil)

		guests.EXPECT().
			Get(gomock.Any(), int64(42)).
			Return(existing, nil)

		tokensMock.EXPECT().
			GenerateTokenPair(int64(42), "jonas@example.com").
			Return(&jwt.TokenPair{AccessToken: "new-access"}, nil)

		result, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", result.Tokens.AccessToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		guests := guestMocks.NewMockGuestService(ctrl)
		tokensMock := jwtMocks.NewMockJWT(ctrl)

		svc := service.New(guests, tokensMock, mocks.NewOtel())

		tokensMock.EXPECT().
			ValidateToken("bogus", jwt.RefreshToken).
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "bogus"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
