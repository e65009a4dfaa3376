package handler

import (
	"context"
	"errors"
	"net/http"

	"contact-info-api/internal/geocoder"
	"contact-info-api/internal/models"
	"contact-info-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GeocodeFailedMessage is shown to the user when a save could not geocode the address.
const GeocodeFailedMessage = "There was a problem getting the data to display this address on a map.  Please refresh your browser and try again."

// ContactInfoService interface for dependency injection
type ContactInfoService interface {
	Defaults() models.AddressRecord
	Get(ctx context.Context, instanceID string) (*models.AddressRecord, error)
	Save(ctx context.Context, instanceID string, form models.ContactInfoForm) (*models.AddressRecord, error)
	Delete(ctx context.Context, instanceID string) error
	Render(ctx context.Context, instanceID string, wrapper models.WidgetWrapper) (*models.RenderedWidget, error)
}

// ContactInfoHandler handles contact info widget requests
type ContactInfoHandler struct {
	service ContactInfoService
}

// NewContactInfoHandler creates a new contact info handler
func NewContactInfoHandler(svc ContactInfoService) *ContactInfoHandler {
	return &ContactInfoHandler{service: svc}
}

// ContactInfoResponse is a stored widget plus whether its address can be plotted
type ContactInfoResponse struct {
	models.AddressRecord
	MapAvailable bool `json:"map_available"`
}

func newContactInfoResponse(rec models.AddressRecord) ContactInfoResponse {
	return ContactInfoResponse{
		AddressRecord: rec,
		MapAvailable:  geocoder.HasUsableMap(rec.Lat, rec.Lon),
	}
}

// Defaults godoc
// @Summary  Default values of a new contact info widget
// @Tags     contact-info
// @Produce  json
// @Success  200 {object} models.AddressRecord
// @Router   /widgets/contact-info/defaults [get]
func (h *ContactInfoHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Defaults())
}

// Get handles GET /widgets/contact-info/:id requests
// @Summary  Stored contact info widget
// @Tags     contact-info
// @Produce  json
// @Param    id  path  string  true  "widget instance id"
// @Success  200 {object} ContactInfoResponse
// @Failure  404 {object} map[string]string
// @Router   /widgets/contact-info/{id} [get]
func (h *ContactInfoHandler) Get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContactInfoResponse(*rec))
}

// Save handles PUT /widgets/contact-info/:id requests
// @Summary  Save the widget settings form
// @Tags     contact-info
// @Accept   json
// @Produce  json
// @Param    id    path  string                  true  "widget instance id"
// @Param    form  body  models.ContactInfoForm  true  "settings form"
// @Success  200 {object} ContactInfoResponse
// @Failure  400 {object} map[string]string
// @Failure  502 {object} map[string]string
// @Router   /widgets/contact-info/{id} [put]
func (h *ContactInfoHandler) Save(c *gin.Context) {
	var form models.ContactInfoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.service.Save(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContactInfoResponse(*rec))
}

// Render handles POST /widgets/contact-info/:id/render requests
// @Summary  Render the widget markup
// @Tags     contact-info
// @Accept   json
// @Produce  json
// @Param    id       path  string                true   "widget instance id"
// @Param    wrapper  body  models.WidgetWrapper  false  "host wrapper markup"
// @Success  200 {object} models.RenderedWidget
// @Router   /widgets/contact-info/{id}/render [post]
func (h *ContactInfoHandler) Render(c *gin.Context) {
	var wrapper models.WidgetWrapper
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&wrapper); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	out, err := h.service.Render(c.Request.Context(), c.Param("id"), wrapper)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /widgets/contact-info/:id requests
// @Summary  Delete a widget instance
// @Tags     contact-info
// @Param    id  path  string  true  "widget instance id"
// @Success  204
// @Router   /widgets/contact-info/{id} [delete]
func (h *ContactInfoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContactInfoHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyInstanceID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing widget instance id"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "contact info widget not found"})
	case geocoder.IsGeocodeError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": GeocodeFailedMessage})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
