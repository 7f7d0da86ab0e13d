package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"calzone/internal/models"
)

// OrdersClient reads the order-management backend.
type OrdersClient struct {
	api *apiClient
}

func NewOrdersClient(baseURL string, token TokenProvider, timeout time.Duration) *OrdersClient {
	return &OrdersClient{api: newAPIClient(baseURL, token, timeout)}
}

// FetchAll returns every order visible to the service account.
func (c *OrdersClient) FetchAll(ctx context.Context) ([]models.OrderRecord, error) {
	var orders []models.OrderRecord
	if err := c.api.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// Assign sets the assignee email on an order.
func (c *OrdersClient) Assign(ctx context.Context, orderID int, assigneeEmail string) error {
	body := map[string]string{"assigneeEmail": assigneeEmail}
	path := fmt.Sprintf("/api/orders/%d/assign", orderID)
	if err := c.api.doJSON(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("assign order %d: %w", orderID, err)
	}
	return nil
}
