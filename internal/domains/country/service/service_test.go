package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oasis/config"
	"oasis/infras/otel/mocks"
	countryMocks "oasis/internal/domains/country/mocks"
	"oasis/internal/domains/country/model"
	"oasis/internal/domains/country/service"
	cacheMocks "oasis/shared/cache/mocks"
	"oasis/shared/failure"
)

func TestCountryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := countryMocks.NewMockCountries(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockClient, cfg, mockCache, mockOtel)

	countries := []model.Country{
		{Name: "Portugal", Flag: "https://flagcdn.com/pt.svg"},
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantStatus int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful fetch",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					GetAll(gomock.Any()).
					Return(countries, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "upstream failure",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:    true,
			wantStatus: 502,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			if tt.name == "cache miss, successful fetch" {
				assert.Len(t, result, 1)
			}
		})
	}
}
