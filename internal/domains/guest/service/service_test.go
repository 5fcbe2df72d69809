package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oasis/config"
	"oasis/infras/otel/mocks"
	guestMocks "oasis/internal/domains/guest/mocks"
	"oasis/internal/domains/guest/model"
	"oasis/internal/domains/guest/model/dto"
	"oasis/internal/domains/guest/service"
	cacheMocks "oasis/shared/cache/mocks"
	"oasis/shared/failure"
)

func TestGuestService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	guest := model.Guest{
		FullName:    "Jonas Schmedtmann",
		Email:       "jonas@example.com",
		Nationality: "Portugal",
	}
	guest.ID = 42

	tests := []struct {
		name      string
		email     string
		setupMock func()
		wantErr   bool
		wantNil   bool
	}{
		{
			name:  "guest found",
			email: "jonas@example.com",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guest, nil)
			},
		},
		{
			name:  "guest absent yields nil without error",
			email: "nobody@example.com",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantNil: true,
		},
		{
			name:  "repository error",
			email: "jonas@example.com",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetByEmail(context.Background(), tt.email)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, int64(42), result.ID)
			}
		})
	}
}

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.CreateGuestRequest{
		FullName:    "Jonas Schmedtmann",
		Email:       "jonas@example.com",
		NationalID:  "ABC123456",
		Nationality: "Portugal",
		CountryFlag: "https://flagcdn.com/pt.svg",
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantStatus int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				stored := req.ToModel()
				stored.ID = 42

				mockRepo.EXPECT().
					Insert(gomock.Any(), req.ToModel()).
					Return(stored, nil)
			},
		},
		{
			name: "duplicate email",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, &pq.Error{Code: "23505"})
			},
			wantErr:    true,
			wantStatus: 409,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("database error"))
			},
			wantErr:    true,
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), result.ID)
			assert.Equal(t, "jonas@example.com", result.Email)
			assert.Equal(t, "Portugal", result.Nationality)
		})
	}
}

func TestGuestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	nationalID := "ABC123456"
	nationality := "Portugal"
	email := "jonas@example.com"
	empty := ""

	tests := []struct {
		name       string
		req        dto.UpdateGuestRequest
		setupMock  func()
		wantErr    bool
		wantStatus int
	}{
		{
			name: "successful update",
			req: dto.UpdateGuestRequest{
				NationalID:  &nationalID,
				Nationality: &nationality,
			},
			setupMock: func() {
				updated := model.Guest{NationalID: nationalID, Nationality: nationality}
				updated.ID = 42

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{
						"nationalID":  nationalID,
						"nationality": nationality,
					}, gomock.Any()).
					Return(updated, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "email-only patch updates only the email column",
			req: dto.UpdateGuestRequest{
				Email: &email,
			},
			setupMock: func() {
				updated := model.Guest{Email: email}
				updated.ID = 42

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{"email": email}, gomock.Any()).
					Return(updated, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate email conflicts",
			req: dto.UpdateGuestRequest{
				Email: &email,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{"email": email}, gomock.Any()).
					Return(model.Guest{}, &pq.Error{Code: "23505"})
			},
			wantErr:    true,
			wantStatus: 409,
		},
		{
			name: "explicit empty string reaches the update",
			req: dto.UpdateGuestRequest{
				Nationality: &empty,
			},
			setupMock: func() {
				updated := model.Guest{}
				updated.ID = 42

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{"nationality": ""}, gomock.Any()).
					Return(updated, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:       "no fields provided",
			req:        dto.UpdateGuestRequest{},
			setupMock:  func() {},
			wantErr:    true,
			wantStatus: 400,
		},
		{
			name: "guest not found",
			req: dto.UpdateGuestRequest{
				Nationality: &nationality,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:    true,
			wantStatus: 404,
		},
		{
			name: "repository error",
			req: dto.UpdateGuestRequest{
				Nationality: &nationality,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("database error"))
			},
			wantErr:    true,
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Update(context.Background(), 42, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), result.ID)
		})
	}
}
