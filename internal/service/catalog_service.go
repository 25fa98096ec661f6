package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskconnect/internal/auth"
	"taskconnect/internal/cache"
	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// listingCacheTTL bounds staleness of the public catalog listing. Token
// validation results are never cached anywhere.
const listingCacheTTL = time.Minute

// ServiceUpdate carries the mutable fields of a service listing.
type ServiceUpdate struct {
	Title       string
	Description string
	Price       int
	Category    string
	ImageURL    string
}

// CatalogService handles marketplace service listings.
type CatalogService interface {
	Create(ctx context.Context, caller *model.User, svc *model.Service) error
	List(ctx context.Context, offset, limit int) ([]model.Service, error)
	Get(ctx context.Context, id uint) (*model.Service, error)
	Update(ctx context.Context, caller *model.User, id uint, upd ServiceUpdate) (*model.Service, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type catalogService struct {
	repo  repository.ServiceRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ServiceRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *catalogService) listKey(offset, limit int) string {
	return fmt.Sprintf("services:%d:%d", offset, limit)
}

// Create persists a new listing owned by the caller. The owner is always
// the resolved caller identity, never client-supplied input.
func (s *catalogService) Create(ctx context.Context, caller *model.User, svc *model.Service) error {
	svc.OwnerID = caller.ID
	svc.IsActive = true
	if err := s.repo.Create(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	s.invalidateListings(ctx, 0, 100)
	return nil
}

// List returns a page of the public catalog, served from cache when fresh.
func (s *catalogService) List(ctx context.Context, offset, limit int) ([]model.Service, error) {
	key := s.listKey(offset, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Service
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	if payload, err := json.Marshal(services); err == nil {
		_ = s.cache.Set(ctx, key, payload, listingCacheTTL)
	}
	return services, nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*model.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return svc, nil
}

// Update applies the edit iff the caller owns the listing. A missing id is
// reported as not-found before any ownership check happens.
func (s *catalogService) Update(ctx context.Context, caller *model.User, id uint, upd ServiceUpdate) (*model.Service, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(caller, svc.OwnerID); err != nil {
		return nil, err
	}

	svc.Title = upd.Title
	svc.Description = upd.Description
	svc.Price = upd.Price
	svc.Category = upd.Category
	svc.ImageURL = upd.ImageURL

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	s.invalidateListings(ctx, 0, 100)
	return svc, nil
}

// Delete removes the listing iff the caller owns it.
func (s *catalogService) Delete(ctx context.Context, caller *model.User, id uint) error {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(caller, svc.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	s.invalidateListings(ctx, 0, 100)
	return nil
}

// invalidateListings drops the default listing page from the cache. Other
// pages age out within listingCacheTTL.
func (s *catalogService) invalidateListings(ctx context.Context, offset, limit int) {
	_ = s.cache.Delete(ctx, s.listKey(offset, limit))
}
