package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/internal/domains/country/model"
	"oasis/shared/constant"
)

// Countries fetches the country list from the external countries API.
type Countries interface {
	GetAll(ctx context.Context) ([]model.Country, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Countries {
	return &clientImpl{
		baseURL: cfg.External.Countries.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.External.Countries.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

func (c *clientImpl) GetAll(ctx context.Context) (countries []model.Country, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".countries.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := c.baseURL + "/all?fields=name,flag"
	scope.SetAttribute("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build countries request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries API returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("failed to decode countries response: %w", err)
	}

	return countries, nil
}
