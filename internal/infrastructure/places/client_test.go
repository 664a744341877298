package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-scout/internal/config"
	"github.com/route-scout/internal/domain"
)

func TestClient_SearchAlongRoute(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		mockResp := map[string]interface{}{
			"places": []map[string]interface{}{
				{
					"id":               "place-1",
					"displayName":      map[string]string{"text": "Murphys Hotel"},
					"formattedAddress": "457 Main St, Murphys, CA",
					"location":         map[string]float64{"latitude": 38.1327, "longitude": -120.4606},
					"rating":           4.5,
					"userRatingCount":  812,
					"types":            []string{"lodging", "restaurant"},
					"priceLevel":       "PRICE_LEVEL_MODERATE",
					"currentOpeningHours": map[string]bool{
						"openNow": true,
					},
				},
				{
					"id":          "place-2",
					"displayName": map[string]string{"text": "Trailhead Coffee"},
					"location":    map[string]float64{"latitude": 38.2458, "longitude": -120.3486},
				},
			},
		}

		var gotBody map[string]interface{}
		var gotFieldMask, gotAPIKey string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/places:searchText", r.URL.Path)

			gotFieldMask = r.Header.Get("X-Goog-FieldMask")
			gotAPIKey = r.Header.Get("X-Goog-Api-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResp)
		}))
		defer server.Close()

		cfg := &config.PlacesConfig{
			APIKey:         "test_key",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		client := NewPlacesClient(cfg, logger)

		result, err := client.SearchAlongRoute(context.Background(), "encoded_polyline", "coffee shops", 20)
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, "test_key", gotAPIKey)
		assert.Contains(t, gotFieldMask, "places.priceLevel")
		assert.Equal(t, "coffee shops", gotBody["textQuery"])
		assert.Equal(t, float64(20), gotBody["maxResultCount"])

		first := result[0]
		assert.Equal(t, "place-1", first.ID)
		assert.Equal(t, "Murphys Hotel", first.Name)
		assert.Equal(t, 38.1327, first.Lat)
		assert.Equal(t, domain.PriceModerate, first.PriceLevel)
		require.NotNil(t, first.Rating)
		assert.Equal(t, 4.5, *first.Rating)
		require.NotNil(t, first.OpenNow)
		assert.True(t, *first.OpenNow)
		assert.Contains(t, first.MapsURL, "place_id:place-1")

		second := result[1]
		assert.Nil(t, second.Rating)
		assert.Nil(t, second.OpenNow)
		assert.Empty(t, second.PriceLevel)
	})

	t.Run("empty polyline", func(t *testing.T) {
		cfg := &config.PlacesConfig{APIKey: "k", BaseURL: "https://places.googleapis.com", RequestTimeout: 30}
		client := NewPlacesClient(cfg, logger)

		_, err := client.SearchAlongRoute(context.Background(), "", "coffee", 20)
		assert.Error(t, err)
	})

	t.Run("empty query", func(t *testing.T) {
		cfg := &config.PlacesConfig{APIKey: "k", BaseURL: "https://places.googleapis.com", RequestTimeout: 30}
		client := NewPlacesClient(cfg, logger)

		_, err := client.SearchAlongRoute(context.Background(), "poly", "", 20)
		assert.Error(t, err)
	})

	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"status": "PERMISSION_DENIED"}}`, http.StatusForbidden)
		}))
		defer server.Close()

		cfg := &config.PlacesConfig{APIKey: "bad", BaseURL: server.URL, RequestTimeout: 30}
		client := NewPlacesClient(cfg, logger)

		_, err := client.SearchAlongRoute(context.Background(), "poly", "coffee", 20)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("no results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		cfg := &config.PlacesConfig{APIKey: "k", BaseURL: server.URL, RequestTimeout: 30}
		client := NewPlacesClient(cfg, logger)

		result, err := client.SearchAlongRoute(context.Background(), "poly", "unicorn stables", 20)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
