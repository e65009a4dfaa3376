package handler

import (
	"net/http"

	"contact-info-api/internal/geocoder"

	"github.com/gin-gonic/gin"
)

// MapLink handles GET /map-link requests
// @Summary  Google Maps link for an address
// @Tags     contact-info
// @Produce  json
// @Param    address  query  string  true  "free text address"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Router   /map-link [get]
func MapLink(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'address'"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    geocoder.Normalize(address),
		"map_link": geocoder.BuildMapLink(address),
	})
}
