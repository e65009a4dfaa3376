package geocoder

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"contact-info-api/internal/models"
)

const (
	mapLinkBase   = "https://maps.google.com/maps"
	mapLinkZoom   = 16
	mapsScriptURL = "https://maps.googleapis.com/maps/api/js"
)

// Normalize lower-cases an address, collapses its whitespace and joins the words with '+'.
// The token is used as the geocode cache key and as the query value for Google Maps.
func Normalize(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), "+")
}

// escapeToken escapes every word of a normalized token while keeping '+' as the separator.
func escapeToken(token string) string {
	if token == "" {
		return ""
	}
	words := strings.Split(token, "+")
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}
	return strings.Join(words, "+")
}

// ShouldRegeocode reports whether the coordinates of old can not be reused for newAddress.
func ShouldRegeocode(old *models.AddressRecord, newAddress string) bool {
	if old == nil {
		return true
	}
	if Normalize(old.Address) != Normalize(newAddress) {
		return true
	}
	return old.Lat == 0 || old.Lon == 0
}

// HasUsableMap is false for the (0,0) sentinel stored when an address could not be plotted.
func HasUsableMap(lat, lon float64) bool {
	return !(lat == 0 && lon == 0)
}

// BuildMapLink returns a Google Maps link for the address. Zoom and query are enough.
func BuildMapLink(address string) string {
	return mapLinkBase + "?z=" + strconv.Itoa(mapLinkZoom) + "&q=" + escapeToken(Normalize(address))
}

// BuildMapFragment returns the mount point consumed by contact-info-map.js.
func BuildMapFragment(lat, lon float64) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<div class="contact-map">`+
			`<input type="hidden" class="contact-info-map-lat" value="%s" />`+
			`<input type="hidden" class="contact-info-map-lon" value="%s" />`+
			`<div class="contact-info-map-canvas"></div></div>`,
		template.HTMLEscapeString(strconv.FormatFloat(lat, 'f', -1, 64)),
		template.HTMLEscapeString(strconv.FormatFloat(lon, 'f', -1, 64)),
	))
}

// MapsScriptURL is the Google Maps JavaScript API the map fragment depends on.
func MapsScriptURL(apiKey string) string {
	if apiKey == "" {
		return mapsScriptURL
	}
	return mapsScriptURL + "?" + url.Values{"key": {apiKey}}.Encode()
}
