package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type mockCatalogAPI struct {
	properties []*model.Property
	err        error
}

func (m *mockCatalogAPI) ListProperties(ctx context.Context) ([]*model.Property, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.properties, nil
}

func (m *mockCatalogAPI) ListOwnProperties(ctx context.Context, userID string) ([]*model.Property, error) {
	if m.err != nil {
		return nil, m.err
	}
	var own []*model.Property
	for _, p := range m.properties {
		if p.OwnerID == userID {
			own = append(own, p)
		}
	}
	return own, nil
}

func sampleCatalog() []*model.Property {
	return []*model.Property{
		{ID: "p1", Name: "Lake View Apartment", Location: "Kolkata", Price: 9000, Availability: true, OwnerID: "owner-1"},
		{ID: "p2", Name: "Sunrise PG", Location: "Bangalore", Price: 7000, Availability: true, OwnerID: "owner-2"},
		{ID: "p3", Name: "Green Nest", Location: "Pune", Price: 6500, Availability: false, OwnerID: "owner-1"},
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	catalog := sampleCatalog()

	result := Search("", catalog)
	if len(result) != len(catalog) {
		t.Fatalf("expected %d properties, got %d", len(catalog), len(result))
	}

	result = Search("   ", catalog)
	if len(result) != len(catalog) {
		t.Fatalf("blank query: expected %d properties, got %d", len(catalog), len(result))
	}
}

func TestSearch_MatchesNameAndLocation(t *testing.T) {
	catalog := sampleCatalog()

	// "kolk" matches "Kolkata" case-insensitively
	result := Search("kolk", catalog)
	if len(result) != 1 || result[0].Name != "Lake View Apartment" {
		t.Fatalf("expected Lake View Apartment for query 'kolk', got %v", result)
	}

	// name match
	result = Search("sunrise", catalog)
	if len(result) != 1 || result[0].ID != "p2" {
		t.Fatalf("expected Sunrise PG for query 'sunrise', got %v", result)
	}

	// no matches
	result = Search("chennai", catalog)
	if len(result) != 0 {
		t.Fatalf("expected no matches for 'chennai', got %d", len(result))
	}
}

func TestBrowsable_HidesOwnListings(t *testing.T) {
	catalog := sampleCatalog()

	visible := Browsable(catalog, "owner-1")
	if len(visible) != 1 || visible[0].ID != "p2" {
		t.Fatalf("expected only p2 visible to owner-1, got %v", visible)
	}

	// someone without listings sees everything
	visible = Browsable(catalog, "tenant-9")
	if len(visible) != 3 {
		t.Fatalf("expected all 3 properties for tenant-9, got %d", len(visible))
	}
}

func TestAll_SubstitutesEmptyCatalogOnError(t *testing.T) {
	api := &mockCatalogAPI{err: errors.New("backend down")}
	svc := NewCatalogService(api, zap.NewNop())

	catalog := svc.All(context.Background())
	if catalog == nil {
		t.Fatal("expected empty catalog, got nil")
	}
	if len(catalog) != 0 {
		t.Fatalf("expected empty catalog on error, got %d entries", len(catalog))
	}
}

func TestMine_FiltersByOwner(t *testing.T) {
	api := &mockCatalogAPI{properties: sampleCatalog()}
	svc := NewCatalogService(api, zap.NewNop())

	mine, err := svc.Mine(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 properties for owner-1, got %d", len(mine))
	}
}
