package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contact-info-api/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	DefaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"
	DefaultTimeout  = 5 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client queries the Google Maps Geocoding API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding client. An empty endpoint or zero timeout falls back to the defaults.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type googleResponse struct {
	Status  *string `json:"status"`
	Results []struct {
		Geometry *struct {
			Location *struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *Client) requestURL(address string) string {
	q := "address=" + escapeToken(Normalize(address))
	if c.apiKey != "" {
		q += "&key=" + escapeToken(c.apiKey)
	}
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + q
}

// Geocode resolves an address to coordinates.
// A ZERO_RESULTS answer is not an error: it yields GeocodeZeroResults at (0,0).
func (c *Client) Geocode(ctx context.Context, address string) (models.GeocodeResult, error) {
	failed := models.GeocodeResult{Status: models.GeocodeError}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(address), nil)
	if err != nil {
		return failed, &Error{Kind: KindNetwork, Message: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed, &Error{Kind: KindNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed, &Error{Kind: KindNetwork, Message: "read body", Err: err}
	}

	log.Debug().
		Str("address", Normalize(address)).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("geocode request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failed, &Error{Kind: KindNetwork, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return failed, &Error{Kind: KindNetwork, Message: "empty body"}
	}

	return decodeResponse(body)
}

func decodeResponse(body []byte) (models.GeocodeResult, error) {
	failed := models.GeocodeResult{Status: models.GeocodeError}

	var decoded googleResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return failed, &Error{Kind: KindMalformed, Message: "decode response", Err: err}
	}
	if decoded.Status == nil {
		return failed, &Error{Kind: KindMalformed, Message: "missing status"}
	}

	switch *decoded.Status {
	case statusZeroResults:
		return models.GeocodeResult{Status: models.GeocodeZeroResults}, nil
	case statusOK:
	default:
		return failed, &Error{Kind: KindMalformed, Message: "provider status " + *decoded.Status}
	}

	if len(decoded.Results) == 0 {
		return failed, &Error{Kind: KindMalformed, Message: "status OK without results"}
	}
	geometry := decoded.Results[0].Geometry
	if geometry == nil || geometry.Location == nil || geometry.Location.Lat == nil || geometry.Location.Lng == nil {
		return failed, &Error{Kind: KindMalformed, Message: "missing results[0].geometry.location"}
	}

	return models.GeocodeResult{
		Status: models.GeocodeOK,
		Lat:    *geometry.Location.Lat,
		Lon:    *geometry.Location.Lng,
	}, nil
}
