package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IShareRepository persists the public receipt snapshots. Snapshots are
// append-only: there is no update or delete.

type IShareRepository interface {
	CreateOrderShare(ctx context.Context, s entities.OrderShare) (entities.OrderShare, error)
	GetOrderShare(ctx context.Context, id string) (entities.OrderShare, error)
	CreateResaleShare(ctx context.Context, s entities.ResaleShare) (entities.ResaleShare, error)
	GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, error)
}
