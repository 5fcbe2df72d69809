package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oasis/config"
	"oasis/infras/otel/mocks"
	s3Mocks "oasis/infras/s3/mocks"
	cabinMocks "oasis/internal/domains/cabin/mocks"
	"oasis/internal/domains/cabin/model"
	"oasis/internal/domains/cabin/service"
	cacheMocks "oasis/shared/cache/mocks"
	"oasis/shared/failure"
)

func TestCabinService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cabinMocks.NewMockCabin(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockImages := s3Mocks.NewMockImageStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockImages, mockOtel)

	cabin := model.Cabin{
		Name:         "001",
		MaxCapacity:  2,
		RegularPrice: 250,
		Discount:     25,
		Image:        "cabin-001.jpg",
	}
	cabin.ID = 7

	tests := []struct {
		name       string
		id         int64
		setupMock  func()
		wantErr    bool
		wantStatus int
		wantID     int64
	}{
		{
			name: "cache hit",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cabin, nil)

				mockImages.EXPECT().
					ImageURL(gomock.Any(), "cabin-001.jpg").
					Return("https://img.example.com/cabin-001.jpg", nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  7,
		},
		{
			name: "cabin not found",
			id:   999,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Cabin{}, nil)
			},
			wantErr:    true,
			wantStatus: 404,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Cabin{}, errors.New("database error"))
			},
			wantErr:    true,
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantStatus != 0 {
					assert.Equal(t, tt.wantStatus, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, result.ID)
					assert.Equal(t, "https://img.example.com/cabin-001.jpg", result.Image)
				}
			}
		})
	}
}

func TestCabinService_GetPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cabinMocks.NewMockCabin(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockImages := s3Mocks.NewMockImageStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockImages, mockOtel)

	priced := model.Cabin{RegularPrice: 250, Discount: 25}
	priced.ID = 7

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantNil   bool
		wantPrice float64
	}{
		{
			name: "cabin priced",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldRegularPrice, model.FieldDiscount).
					Return(priced, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPrice: 250,
		},
		{
			name: "cabin absent yields no price and no error",
			id:   999,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldRegularPrice, model.FieldDiscount).
					Return(model.Cabin{}, nil)
			},
			wantNil: true,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldRegularPrice, model.FieldDiscount).
					Return(model.Cabin{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetPrice(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.wantPrice, result.RegularPrice)
			}
		})
	}
}

func TestCabinService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cabinMocks.NewMockCabin(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockImages := s3Mocks.NewMockImageStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockImages, mockOtel)

	cabins := []model.Cabin{
		{Name: "001", MaxCapacity: 2, RegularPrice: 250, Image: "cabin-001.jpg"},
		{Name: "002", MaxCapacity: 4, RegularPrice: 350, Image: "cabin-002.jpg"},
	}
	cabins[0].ID = 1
	cabins[1].ID = 2

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cabins, nil)

				mockImages.EXPECT().
					ImageURL(gomock.Any(), gomock.Any()).
					Return("https://img.example.com/cabin.jpg", nil).
					Times(2)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantLen: 2,
		},
		{
			name: "image resolution failure keeps raw reference",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cabins[:1], nil)

				mockImages.EXPECT().
					ImageURL(gomock.Any(), "cabin-001.jpg").
					Return("", errors.New("presign failure"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantLen: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, result, tt.wantLen)
			if tt.name == "image resolution failure keeps raw reference" {
				assert.Equal(t, "cabin-001.jpg", result[0].Image)
			}
		})
	}
}
