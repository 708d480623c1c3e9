package service

import (
	"context"
	"strings"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type catalogAPI interface {
	ListProperties(ctx context.Context) ([]*model.Property, error)
	ListOwnProperties(ctx context.Context, userID string) ([]*model.Property, error)
}

// CatalogService reads the listing catalog. It holds no state: every view
// renders from a fresh fetch.
type CatalogService struct {
	api    catalogAPI
	logger *zap.Logger
}

func NewCatalogService(api catalogAPI, logger *zap.Logger) *CatalogService {
	return &CatalogService{api: api, logger: logger}
}

// All fetches the whole catalog. A failed fetch is logged and an empty
// catalog substituted so the listings screen still renders.
func (s *CatalogService) All(ctx context.Context) []*model.Property {
	properties, err := s.api.ListProperties(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return []*model.Property{}
	}
	return properties
}

// Mine fetches the listings owned by userID.
func (s *CatalogService) Mine(ctx context.Context, userID string) ([]*model.Property, error) {
	return s.api.ListOwnProperties(ctx, userID)
}

// Search filters the catalog by case-insensitive substring match against
// name or location. An empty or blank query returns the catalog unfiltered.
// Pure function, re-run on every render of the listings screen.
func Search(query string, catalog []*model.Property) []*model.Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog
	}

	var result []*model.Property
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Location), q) {
			result = append(result, p)
		}
	}
	return result
}

// Browsable hides the viewer's own listings from the tenant view.
func Browsable(catalog []*model.Property, viewerID string) []*model.Property {
	var result []*model.Property
	for _, p := range catalog {
		if !p.OwnedBy(viewerID) {
			result = append(result, p)
		}
	}
	return result
}
