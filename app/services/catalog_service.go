package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/cache"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

const (
	cacheKeyParts       = "catalog:parts"
	cacheKeyPartsSorted = "catalog:parts:sorted"
	catalogCacheTTL     = 2 * time.Minute
)

// PartStore is the slice of the part repository the catalog uses.
type PartStore interface {
	List(ctx context.Context, sortedDesc bool) ([]models.Part, error)
	Get(ctx context.Context, id string) (models.Part, error)
	FindByEmailTitle(ctx context.Context, email, title string) (models.Part, error)
	Insert(ctx context.Context, part models.Part) (models.Part, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	UpsertStock(ctx context.Context, id string, stock int) error
	Delete(ctx context.Context, id string) error
}

// CatalogService serves part listings through a read cache and guards
// all mutations behind an authenticated owner email.
type CatalogService struct {
	parts PartStore
}

func NewCatalogService(parts PartStore) *CatalogService {
	return &CatalogService{parts: parts}
}

// List returns every part, optionally newest-first. Reads go through
// the cache; a cache failure falls back to the store.
func (s *CatalogService) List(ctx context.Context, sortedDesc bool) ([]models.Part, error) {
	key := cacheKeyParts
	if sortedDesc {
		key = cacheKeyPartsSorted
	}

	var cached []models.Part
	if cache.Get(key, &cached) {
		return cached, nil
	}

	parts, err := s.parts.List(ctx, sortedDesc)
	if err != nil {
		return nil, fmt.Errorf("catalog: list parts: %w", err)
	}

	cache.Set(key, parts, catalogCacheTTL)
	return parts, nil
}

// Get returns a single part by id.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Part, error) {
	return s.parts.Get(ctx, id)
}

// Create inserts a new part owned by ownerEmail. The owner comes from
// the verified token claims, never from the request body.
func (s *CatalogService) Create(ctx context.Context, ownerEmail string, part models.Part) (models.Part, error) {
	part.Email = ownerEmail

	created, err := s.parts.Insert(ctx, part)
	if err != nil {
		return models.Part{}, fmt.Errorf("catalog: create part: %w", err)
	}
	s.invalidate()
	return created, nil
}

// UpdateResult reports whether an update went through or was stopped
// by the (email, title) idempotency guard. When stopped, Part is the
// existing record, untouched.
type UpdateResult struct {
	Applied bool
	Part    models.Part
}

// UpdateDedup applies an update unless the caller already has a part
// with the same (email, title) pair. A match rejects the patch and
// hands back the existing record instead, so an accidental
// resubmission of a listing never mutates it.
func (s *CatalogService) UpdateDedup(ctx context.Context, ownerEmail, id, title string, fields map[string]any) (UpdateResult, error) {
	existing, err := s.parts.FindByEmailTitle(ctx, ownerEmail, title)
	switch {
	case err == nil:
		return UpdateResult{Applied: false, Part: existing}, nil
	case errors.Is(err, store.ErrNotFound):
		// No duplicate; the update may proceed.
	default:
		return UpdateResult{}, fmt.Errorf("catalog: dedup lookup: %w", err)
	}

	if err := s.parts.Update(ctx, id, fields); err != nil {
		return UpdateResult{}, fmt.Errorf("catalog: update part: %w", err)
	}
	s.invalidate()

	part, err := s.parts.Get(ctx, id)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Applied: true, Part: part}, nil
}

// AdjustStock upserts the stock level for a part.
func (s *CatalogService) AdjustStock(ctx context.Context, id string, stock int) error {
	if err := s.parts.UpsertStock(ctx, id, stock); err != nil {
		return fmt.Errorf("catalog: adjust stock: %w", err)
	}
	s.invalidate()
	return nil
}

// Delete removes a part.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.parts.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog: delete part: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *CatalogService) invalidate() {
	cache.Del(cacheKeyParts, cacheKeyPartsSorted)
}
