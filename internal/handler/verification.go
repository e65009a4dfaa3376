package handler

import (
	"context"
	"errors"
	"net/http"

	"contact-info-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// VerificationService interface for dependency injection
type VerificationService interface {
	Activate(ctx context.Context) (bool, error)
	ConfigureURL() string
	Codes(ctx context.Context) (map[string]string, error)
	UpdateCodes(ctx context.Context, codes map[string]string) (map[string]string, error)
}

// VerificationHandler handles the site verification module requests
type VerificationHandler struct {
	service VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(svc VerificationService) *VerificationHandler {
	return &VerificationHandler{service: svc}
}

// Activate handles POST /modules/verification-tools/activate requests
func (h *VerificationHandler) Activate(c *gin.Context) {
	added, err := h.service.Activate(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("verification tools activation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activated": true, "defaults_set": added})
}

// Configure handles GET /modules/verification-tools/configure requests
func (h *VerificationHandler) Configure(c *gin.Context) {
	c.Redirect(http.StatusFound, h.service.ConfigureURL())
}

// Codes handles GET /modules/verification-tools/codes requests
func (h *VerificationHandler) Codes(c *gin.Context) {
	codes, err := h.service.Codes(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("loading verification codes failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, codes)
}

// UpdateCodes handles PUT /modules/verification-tools/codes requests
func (h *VerificationHandler) UpdateCodes(c *gin.Context) {
	var codes map[string]string
	if err := c.ShouldBindJSON(&codes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.service.UpdateCodes(c.Request.Context(), codes)
	if err != nil {
		if errors.Is(err, service.ErrUnknownVerificationService) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("saving verification codes failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
