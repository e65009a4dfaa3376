package service

import (
	"context"
	"errors"
	"fmt"

	"contact-info-api/internal/geocoder"
	"contact-info-api/internal/models"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound is returned when a widget instance has never been saved
	ErrNotFound = errors.New("service: contact info not found")
	// ErrEmptyInstanceID is returned for requests without a widget instance id
	ErrEmptyInstanceID = errors.New("service: instance id cannot be empty")
)

// ContactInfoRepository interface for dependency injection
type ContactInfoRepository interface {
	GetContactInfo(ctx context.Context, instanceID string) (*models.AddressRecord, error)
	SaveContactInfo(ctx context.Context, rec *models.AddressRecord) error
	DeleteContactInfo(ctx context.Context, instanceID string) error
}

// Geocoder resolves an address to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.GeocodeResult, error)
}

// ContactInfoService contains the business logic of the contact info widget
type ContactInfoService struct {
	repo       ContactInfoRepository
	geocoder   Geocoder
	mapsAPIKey string
}

// NewContactInfoService creates a new contact info service
func NewContactInfoService(repo ContactInfoRepository, geo Geocoder, mapsAPIKey string) *ContactInfoService {
	return &ContactInfoService{repo: repo, geocoder: geo, mapsAPIKey: mapsAPIKey}
}

// Defaults returns the values a new widget starts with
func (s *ContactInfoService) Defaults() models.AddressRecord {
	return models.AddressRecord{
		Title:   "Hours & Info",
		Address: "3999 Mission Boulevard,\nSan Diego CA 92109",
		Phone:   "1-202-555-1212",
		Hours:   "Lunch: 11am - 2pm \nDinner: M-Th 5pm - 11pm, Fri-Sat:5pm - 1am",
		ShowMap: true,
	}
}

// Get returns a stored widget instance
func (s *ContactInfoService) Get(ctx context.Context, instanceID string) (*models.AddressRecord, error) {
	if instanceID == "" {
		return nil, ErrEmptyInstanceID
	}

	rec, err := s.repo.GetContactInfo(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load contact info: %w", err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	return rec, nil
}

// Prepare builds the record to store for a submitted form. old is the stored record, if any.
// The address is geocoded again only when its coordinates can not be reused; a failed
// lookup aborts the whole update.
func (s *ContactInfoService) Prepare(ctx context.Context, instanceID string, form models.ContactInfoForm, old *models.AddressRecord) (models.AddressRecord, error) {
	rec := models.AddressRecord{
		InstanceID: instanceID,
		Title:      stripTags(form.Title),
		Address:    stripTags(form.Address),
		Phone:      stripTags(form.Phone),
		Hours:      stripTags(form.Hours),
	}
	if form.ShowMap != nil {
		rec.ShowMap = *form.ShowMap
	}
	if old != nil {
		rec.Lat, rec.Lon = old.Lat, old.Lon
	}

	if rec.Address == "" || !geocoder.ShouldRegeocode(old, rec.Address) {
		return rec, nil
	}

	result, err := s.geocoder.Geocode(ctx, rec.Address)
	if err != nil {
		log.Warn().Err(err).Str("instance_id", instanceID).Msg("geocoding failed")
		return models.AddressRecord{}, fmt.Errorf("service: failed to geocode address: %w", err)
	}

	switch result.Status {
	case models.GeocodeOK:
		rec.Lat, rec.Lon = result.Lat, result.Lon
	case models.GeocodeZeroResults:
		// No map is available for this address.
		rec.Lat, rec.Lon = 0, 0
	default:
		return models.AddressRecord{}, fmt.Errorf("service: unexpected geocode status %s", result.Status)
	}

	log.Info().
		Str("instance_id", instanceID).
		Str("status", result.Status.String()).
		Float64("lat", rec.Lat).
		Float64("lon", rec.Lon).
		Msg("address geocoded")

	return rec, nil
}

// Save applies a submitted settings form to a widget instance and persists it
func (s *ContactInfoService) Save(ctx context.Context, instanceID string, form models.ContactInfoForm) (*models.AddressRecord, error) {
	if instanceID == "" {
		return nil, ErrEmptyInstanceID
	}

	old, err := s.repo.GetContactInfo(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load contact info: %w", err)
	}

	rec, err := s.Prepare(ctx, instanceID, form, old)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveContactInfo(ctx, &rec); err != nil {
		return nil, fmt.Errorf("service: failed to save contact info: %w", err)
	}

	return &rec, nil
}

// Delete removes a widget instance together with its cached coordinates
func (s *ContactInfoService) Delete(ctx context.Context, instanceID string) error {
	if instanceID == "" {
		return ErrEmptyInstanceID
	}

	if err := s.repo.DeleteContactInfo(ctx, instanceID); err != nil {
		return fmt.Errorf("service: failed to delete contact info: %w", err)
	}

	return nil
}

// Render produces the widget markup. An instance that was never saved renders the defaults.
func (s *ContactInfoService) Render(ctx context.Context, instanceID string, wrapper models.WidgetWrapper) (*models.RenderedWidget, error) {
	if instanceID == "" {
		return nil, ErrEmptyInstanceID
	}

	rec, err := s.repo.GetContactInfo(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load contact info: %w", err)
	}
	if rec == nil {
		defaults := s.Defaults()
		defaults.InstanceID = instanceID
		rec = &defaults
	}

	return renderWidget(rec, wrapper, s.mapsAPIKey), nil
}
