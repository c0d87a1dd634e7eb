package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// ISnapshotCache is a read-through cache for immutable share snapshots.
// A miss is (zero, false, nil).
type ISnapshotCache interface {
	GetOrderShare(ctx context.Context, id string) (entities.OrderShare, bool, error)
	SetOrderShare(ctx context.Context, s entities.OrderShare) error
	GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, bool, error)
	SetResaleShare(ctx context.Context, s entities.ResaleShare) error
}
