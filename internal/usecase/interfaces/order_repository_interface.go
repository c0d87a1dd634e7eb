package interfaces

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Not-found convention: lookups and conditional updates return a zero
// ServiceOrder (empty ID) and a nil error; the use case turns that into
// ErrOrderNotFound or ErrInvalidTransition.
//
// UpdateStatus is conditional on the stored status still being `from`.
// UpdatePhotos is a plain last-write-wins overwrite of both buckets.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.ServiceOrder, error)
	UpdatePhotos(ctx context.Context, id string, before, after []string) (entities.ServiceOrder, error)
	UpdatePayment(ctx context.Context, id string, p entities.OrderPayment) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
