package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/route-scout/internal/config"
	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/domain/repository"
	"go.uber.org/zap"
)

// fieldMask limits the response to the attributes the service surfaces
const fieldMask = "places.id,places.displayName,places.formattedAddress,places.rating," +
	"places.location,places.types,places.userRatingCount,places.priceLevel,places.currentOpeningHours"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewPlacesClient creates a client for the Google Places API (New) text search
func NewPlacesClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type searchRequest struct {
	TextQuery                  string          `json:"textQuery"`
	MaxResultCount             int             `json:"maxResultCount"`
	SearchAlongRouteParameters routeParameters `json:"searchAlongRouteParameters"`
}

type routeParameters struct {
	Polyline encodedPolyline `json:"polyline"`
}

type encodedPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type searchResponse struct {
	Places []placePayload `json:"places"`
}

type placePayload struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Rating              *float64 `json:"rating"`
	UserRatingCount     *int     `json:"userRatingCount"`
	Types               []string `json:"types"`
	PriceLevel          string   `json:"priceLevel"`
	CurrentOpeningHours *struct {
		OpenNow *bool `json:"openNow"`
	} `json:"currentOpeningHours"`
}

var priceLevels = map[string]string{
	"PRICE_LEVEL_FREE":           domain.PriceFree,
	"PRICE_LEVEL_INEXPENSIVE":    domain.PriceInexpensive,
	"PRICE_LEVEL_MODERATE":       domain.PriceModerate,
	"PRICE_LEVEL_EXPENSIVE":      domain.PriceExpensive,
	"PRICE_LEVEL_VERY_EXPENSIVE": domain.PriceVeryExpensive,
}

// SearchAlongRoute queries places matching the free-text query near the route
// described by the encoded polyline
func (c *client) SearchAlongRoute(ctx context.Context, polyline, query string, maxResults int) ([]domain.Place, error) {
	if polyline == "" {
		return nil, fmt.Errorf("encoded polyline cannot be empty")
	}
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	body, err := json.Marshal(searchRequest{
		TextQuery:      query,
		MaxResultCount: maxResults,
		SearchAlongRouteParameters: routeParameters{
			Polyline: encodedPolyline{EncodedPolyline: polyline},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/v1/places:searchText"

	c.logger.Debug("Calling Places searchText API",
		zap.String("query", query),
		zap.Int("max_results", maxResults),
		zap.Int("polyline_len", len(polyline)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	// Field mask is mandatory, the API rejects requests without one
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := make([]domain.Place, 0, len(searchResp.Places))
	for _, p := range searchResp.Places {
		result = append(result, convertPlace(p))
	}

	c.logger.Debug("Places searchText API call successful",
		zap.Int("results", len(result)))

	return result, nil
}

func convertPlace(p placePayload) domain.Place {
	place := domain.Place{
		ID:          p.ID,
		Name:        p.DisplayName.Text,
		Address:     p.FormattedAddress,
		Lat:         p.Location.Latitude,
		Lon:         p.Location.Longitude,
		Rating:      p.Rating,
		RatingCount: p.UserRatingCount,
		PriceLevel:  priceLevels[p.PriceLevel],
		Types:       p.Types,
	}

	if place.Name == "" {
		place.Name = "Unknown"
	}

	if p.CurrentOpeningHours != nil {
		place.OpenNow = p.CurrentOpeningHours.OpenNow
	}

	// Prefer the place-id deep link, it lands on the business listing
	if p.ID != "" {
		place.MapsURL = fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", p.ID)
	} else {
		place.MapsURL = fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f",
			p.Location.Latitude, p.Location.Longitude)
	}

	return place
}
