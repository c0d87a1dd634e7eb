package interfaces

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IResaleRepository abstracts DynamoDB persistence for ResaleItem.
//
// MarkSold only applies to items in stock and RevertSale only to sold items;
// both return a zero ResaleItem when the condition does not hold. Delete
// reports false when the item does not exist.

type IResaleRepository interface {
	Create(ctx context.Context, r entities.ResaleItem) (entities.ResaleItem, error)
	GetByID(ctx context.Context, id string) (entities.ResaleItem, error)
	List(ctx context.Context) ([]entities.ResaleItem, error)
	MarkSold(ctx context.Context, id string, soldPrice, profit decimal.Decimal, at time.Time) (entities.ResaleItem, error)
	RevertSale(ctx context.Context, id string, at time.Time) (entities.ResaleItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
