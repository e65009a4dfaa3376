package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// VerificationCodesOption holds the site verification codes, keyed by service.
// A value of 0 means no code has been entered yet.
const VerificationCodesOption = "verification_services_codes"

// VerificationServices lists the services a site can be verified with
var VerificationServices = []string{"bing", "google", "pinterest", "yandex"}

// ErrUnknownVerificationService is returned for codes of services that are not supported
var ErrUnknownVerificationService = errors.New("service: unknown verification service")

// OptionRepository interface for dependency injection
type OptionRepository interface {
	GetOption(ctx context.Context, name string) (json.RawMessage, error)
	AddOption(ctx context.Context, name string, value json.RawMessage) (bool, error)
	UpdateOption(ctx context.Context, name string, value json.RawMessage) error
}

// VerificationService backs the site verification module
type VerificationService struct {
	repo     OptionRepository
	toolsURL string
}

// NewVerificationService creates a new verification service
func NewVerificationService(repo OptionRepository, toolsURL string) *VerificationService {
	return &VerificationService{repo: repo, toolsURL: toolsURL}
}

// Activate sets the default option value unless one is already stored
func (s *VerificationService) Activate(ctx context.Context) (bool, error) {
	added, err := s.repo.AddOption(ctx, VerificationCodesOption, json.RawMessage(`0`))
	if err != nil {
		return false, fmt.Errorf("service: failed to set default verification option: %w", err)
	}
	if added {
		log.Info().Str("option", VerificationCodesOption).Msg("default option set")
	}
	return added, nil
}

// ConfigureURL is where the module's configure action sends the user
func (s *VerificationService) ConfigureURL() string {
	return s.toolsURL
}

// Codes returns the stored verification codes. The unset default yields an empty map.
func (s *VerificationService) Codes(ctx context.Context) (map[string]string, error) {
	value, err := s.repo.GetOption(ctx, VerificationCodesOption)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load verification codes: %w", err)
	}

	codes := map[string]string{}
	if len(value) == 0 || value[0] != '{' {
		return codes, nil
	}
	if err := json.Unmarshal(value, &codes); err != nil {
		return nil, fmt.Errorf("service: invalid verification codes option: %w", err)
	}
	return codes, nil
}

// UpdateCodes replaces the stored verification codes. Empty codes are dropped.
func (s *VerificationService) UpdateCodes(ctx context.Context, codes map[string]string) (map[string]string, error) {
	clean := make(map[string]string, len(codes))
	for name, code := range codes {
		if !slices.Contains(VerificationServices, name) {
			return nil, fmt.Errorf("%w %q (expected one of %s)",
				ErrUnknownVerificationService, name, strings.Join(VerificationServices, ", "))
		}
		code = strings.TrimSpace(stripTags(code))
		if code != "" {
			clean[name] = code
		}
	}

	value, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("service: failed to encode verification codes: %w", err)
	}
	if err := s.repo.UpdateOption(ctx, VerificationCodesOption, value); err != nil {
		return nil, fmt.Errorf("service: failed to save verification codes: %w", err)
	}

	return clean, nil
}
