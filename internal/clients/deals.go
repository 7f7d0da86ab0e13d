package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"calzone/internal/models"
)

// DealsClient talks to the deal-management backend (manual pipeline records).
type DealsClient struct {
	api *apiClient
}

func NewDealsClient(baseURL string, token TokenProvider, timeout time.Duration) *DealsClient {
	return &DealsClient{api: newAPIClient(baseURL, token, timeout)}
}

// FetchAll returns all manual deals, newest first (backend ordering).
func (c *DealsClient) FetchAll(ctx context.Context) ([]models.ManualDealRecord, error) {
	var deals []models.ManualDealRecord
	if err := c.api.doJSON(ctx, http.MethodGet, "/api/deals", nil, &deals); err != nil {
		return nil, fmt.Errorf("fetch deals: %w", err)
	}
	return deals, nil
}

// Create stores a new manual deal and returns the server-confirmed record.
func (c *DealsClient) Create(ctx context.Context, input models.DealInput) (models.ManualDealRecord, error) {
	var created models.ManualDealRecord
	if err := c.api.doJSON(ctx, http.MethodPost, "/api/deals", input, &created); err != nil {
		return models.ManualDealRecord{}, fmt.Errorf("create deal: %w", err)
	}
	return created, nil
}

// Update applies a partial patch (the backend accepts a field map) and
// returns the updated record.
func (c *DealsClient) Update(ctx context.Context, dealID int, patch map[string]any) (models.ManualDealRecord, error) {
	var updated models.ManualDealRecord
	path := fmt.Sprintf("/api/deals/%d", dealID)
	if err := c.api.doJSON(ctx, http.MethodPut, path, patch, &updated); err != nil {
		return models.ManualDealRecord{}, fmt.Errorf("update deal %d: %w", dealID, err)
	}
	return updated, nil
}
