package service

import (
	"context"
	"encoding/json"

	"contact-info-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockContactInfoRepository is a mock implementation of the ContactInfoRepository interface
type MockContactInfoRepository struct {
	mock.Mock
}

func (m *MockContactInfoRepository) GetContactInfo(ctx context.Context, instanceID string) (*models.AddressRecord, error) {
	args := m.Called(ctx, instanceID)
	rec, _ := args.Get(0).(*models.AddressRecord)
	return rec, args.Error(1)
}

func (m *MockContactInfoRepository) SaveContactInfo(ctx context.Context, rec *models.AddressRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockContactInfoRepository) DeleteContactInfo(ctx context.Context, instanceID string) error {
	args := m.Called(ctx, instanceID)
	return args.Error(0)
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (models.GeocodeResult, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.GeocodeResult), args.Error(1)
}

// MockOptionRepository is a mock implementation of the OptionRepository interface
type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) GetOption(ctx context.Context, name string) (json.RawMessage, error) {
	args := m.Called(ctx, name)
	value, _ := args.Get(0).(json.RawMessage)
	return value, args.Error(1)
}

func (m *MockOptionRepository) AddOption(ctx context.Context, name string, value json.RawMessage) (bool, error) {
	args := m.Called(ctx, name, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockOptionRepository) UpdateOption(ctx context.Context, name string, value json.RawMessage) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}
