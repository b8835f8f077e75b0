package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/stageops/pkg/cache"
	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	"github.com/ghuser/stageops/services/inventory/domain/models"
	"github.com/ghuser/stageops/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stageops/services/inventory/domain/services"
)

// ItemService orchestrates creation and retrieval of Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists an Item. The repository publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, name, category string, quantity, minThreshold int, unit string) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItem, err)
	}

	item, err := models.NewItem(itemName, category, quantity, minThreshold, unit)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:           cached.ID,
				Name:         models.ItemName(cached.Name),
				Category:     cached.Category,
				Quantity:     cached.Quantity,
				MinThreshold: cached.MinThreshold,
				Unit:         cached.Unit,
				CreatedAt:    cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — log in production; fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:           item.ID,
				Name:         item.Name.String(),
				Category:     item.Category,
				Quantity:     item.Quantity,
				MinThreshold: item.MinThreshold,
				Unit:         item.Unit,
				CreatedAt:    item.CreatedAt,
			})
		}()
	}

	return item, nil
}

// List returns a paginated slice of items plus total count.
func (s *ItemService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// LowStock returns items at or under their reorder threshold.
func (s *ItemService) LowStock(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	return items, nil
}
