package services

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/munna98/stock-star/internal/dto"
)

// ItemSvcFacade exposes item record management.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, req dto.SaveItemRequest) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, itemID int64, req dto.SaveItemRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
}
