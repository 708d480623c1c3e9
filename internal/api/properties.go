package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

type productsResponse struct {
	Products []*model.Property `json:"products"`
}

type productResponse struct {
	Product *model.Property `json:"product"`
}

// ListProperties fetches the whole catalog. No pagination on this endpoint.
func (c *Client) ListProperties(ctx context.Context) ([]*model.Property, error) {
	var resp productsResponse
	if err := c.do(ctx, "list properties", http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ListOwnProperties fetches the listings owned by userID.
func (c *Client) ListOwnProperties(ctx context.Context, userID string) ([]*model.Property, error) {
	var resp productsResponse
	path := fmt.Sprintf("/%s/products", userID)
	if err := c.do(ctx, "list own properties", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// CreateProperty creates a listing and returns the backend's copy of it.
func (c *Client) CreateProperty(ctx context.Context, ownerID string, draft model.PropertyDraft) (*model.Property, error) {
	var resp productResponse
	path := fmt.Sprintf("/%s/details", ownerID)
	if err := c.do(ctx, "create property", http.MethodPost, path, draft, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// UpdateProperty applies a full-record patch; there is no partial-field
// update on the backend.
func (c *Client) UpdateProperty(ctx context.Context, ownerID, propertyID string, draft model.PropertyDraft) error {
	path := fmt.Sprintf("/%s/products/%s", ownerID, propertyID)
	return c.do(ctx, "update property", http.MethodPut, path, draft, nil)
}

// DeleteProperty removes a listing.
func (c *Client) DeleteProperty(ctx context.Context, ownerID, propertyID string) error {
	path := fmt.Sprintf("/%s/products/%s", ownerID, propertyID)
	return c.do(ctx, "delete property", http.MethodDelete, path, nil, nil)
}
