package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

// ErrInvalidDraft is returned when a listing draft misses required fields.
var ErrInvalidDraft = errors.New("property draft is incomplete")

type propertyAPI interface {
	CreateProperty(ctx context.Context, ownerID string, draft model.PropertyDraft) (*model.Property, error)
	UpdateProperty(ctx context.Context, ownerID, propertyID string, draft model.PropertyDraft) error
	DeleteProperty(ctx context.Context, ownerID, propertyID string) error
}

// PropertyService performs listing CRUD for the owner. After each mutation
// the calling handler refetches the owner's listings, so no local copy is
// patched here.
type PropertyService struct {
	api    propertyAPI
	logger *zap.Logger
}

func NewPropertyService(api propertyAPI, logger *zap.Logger) *PropertyService {
	return &PropertyService{api: api, logger: logger}
}

// Create validates the draft and creates the listing, returning the
// backend's copy of it.
func (s *PropertyService) Create(ctx context.Context, ownerID string, draft model.PropertyDraft) (*model.Property, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	property, err := s.api.CreateProperty(ctx, ownerID, draft)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.logger.Info("Property created",
		zap.String("owner_id", ownerID),
		zap.String("property_id", property.ID),
		zap.String("name", property.Name),
	)

	return property, nil
}

// Update applies a full-record patch to one listing.
func (s *PropertyService) Update(ctx context.Context, ownerID, propertyID string, draft model.PropertyDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	if err := s.api.UpdateProperty(ctx, ownerID, propertyID, draft); err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	s.logger.Info("Property updated",
		zap.String("owner_id", ownerID),
		zap.String("property_id", propertyID),
	)

	return nil
}

// Delete removes one listing.
func (s *PropertyService) Delete(ctx context.Context, ownerID, propertyID string) error {
	if err := s.api.DeleteProperty(ctx, ownerID, propertyID); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	s.logger.Info("Property deleted",
		zap.String("owner_id", ownerID),
		zap.String("property_id", propertyID),
	)

	return nil
}

// validateDraft enforces the required fields: name, location, positive
// price and an image reference. Availability is a plain flag and always
// valid.
func validateDraft(draft model.PropertyDraft) error {
	if draft.Name == "" || draft.Location == "" || draft.ImageURL == "" {
		return ErrInvalidDraft
	}
	if draft.Price <= 0 {
		return ErrInvalidDraft
	}
	return nil
}
