package repositories

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
)

// ItemRepository defines persistence operations for Items.
type ItemRepository interface {
	SaveItem(ctx context.Context, item domain.Item) (int64, error)
	FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error)
	// ListItems joins brand and model names for display.
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, itemID int64) error
	CountActiveItems(ctx context.Context) (int64, error)
}
