package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
)

type itemService struct {
	itemRepo portsrepo.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepository) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, req dto.SaveItemRequest) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item := domain.Item{
		Code:     req.Code,
		Name:     req.Name,
		BrandID:  req.BrandID,
		ModelID:  req.ModelID,
		IsActive: req.IsActive == nil || *req.IsActive,
	}

	itemID, err := s.itemRepo.SaveItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	item.ID = itemID

	logger.Info("Item created", slog.Int64("item_id", itemID), slog.String("code", item.Code))
	return &item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID int64, req dto.SaveItemRequest) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %d: %w", itemID, err)
	}

	item := domain.Item{
		ID:       existing.ID,
		Code:     req.Code,
		Name:     req.Name,
		BrandID:  req.BrandID,
		ModelID:  req.ModelID,
		IsActive: existing.IsActive,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item %d: %w", itemID, err)
	}

	logger.Info("Item updated", slog.Int64("item_id", itemID))
	return &item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", itemID, err)
	}

	logger.Info("Item deleted", slog.Int64("item_id", itemID))
	return nil
}
