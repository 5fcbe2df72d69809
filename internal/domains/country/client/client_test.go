package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"oasis/config"
	"oasis/infras/otel/mocks"
	"oasis/internal/domains/country/client"
)

func newTestClient(baseURL string) client.Countries {
	cfg := &config.Config{}
	cfg.External.Countries.BaseURL = baseURL
	cfg.External.Countries.TimeoutSeconds = 5

	return client.New(cfg, mocks.NewOtel())
}

func TestCountriesClient_GetAll(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/all", r.URL.Path)
			assert.Equal(t, "name,flag", r.URL.Query().Get("fields"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name":"Portugal","flag":"https://flagcdn.com/pt.svg"},{"name":"Germany","flag":"https://flagcdn.com/de.svg"}]`))
		}))
		defer server.Close()

		countries, err := newTestClient(server.URL).GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, countries, 2)
		assert.Equal(t, "Portugal", countries[0].Name)
		assert.Equal(t, "https://flagcdn.com/pt.svg", countries[0].Flag)
	})

	t.Run("upstream failure status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetAll(context.Background())

		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetAll(context.Background())

		assert.Error(t, err)
	})
}
