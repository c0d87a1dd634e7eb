package cache

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	orderShareKeyPrefix  = "share:order:"
	resaleShareKeyPrefix = "share:resale:"
)

// SnapshotCache keeps published share snapshots in Redis. Snapshots never
// change after they are written, so entries only expire by TTL.
type SnapshotCache struct {
	redis *Redis
	ttl   time.Duration
}

var _ interfaces.ISnapshotCache = (*SnapshotCache)(nil)

func NewSnapshotCache(r *Redis, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{redis: r, ttl: ttl}
}

type orderShareEntry struct {
	ID           string              `json:"id"`
	StoreName    string              `json:"store_name"`
	Customer     string              `json:"customer"`
	Brand        string              `json:"brand"`
	Model        string              `json:"model"`
	Repairs      []string            `json:"repairs"`
	Conditions   []string            `json:"conditions"`
	TotalPrice   decimal.NullDecimal `json:"total_price"`
	PhotosBefore []string            `json:"photos_before"`
	PhotosAfter  []string            `json:"photos_after"`
	CreatedAt    time.Time           `json:"created_at"`
	OrderID      string              `json:"order_id"`
}

type resaleShareEntry struct {
	ID             string              `json:"id"`
	StoreName      string              `json:"store_name"`
	Brand          string              `json:"brand"`
	Model          string              `json:"model"`
	EstimatedPrice decimal.NullDecimal `json:"estimated_price"`
	SoldPrice      decimal.NullDecimal `json:"sold_price"`
	SoldAt         *time.Time          `json:"sold_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	ResaleID       string              `json:"resale_id"`
}

func (c *SnapshotCache) GetOrderShare(ctx context.Context, id string) (entities.OrderShare, bool, error) {
	var e orderShareEntry
	found, err := c.redis.GetJSON(ctx, orderShareKeyPrefix+id, &e)
	if err != nil || !found {
		return entities.OrderShare{}, false, err
	}
	return entities.OrderShare(e), true, nil
}

func (c *SnapshotCache) SetOrderShare(ctx context.Context, s entities.OrderShare) error {
	return c.redis.SetJSON(ctx, orderShareKeyPrefix+s.ID, orderShareEntry(s), c.ttl)
}

func (c *SnapshotCache) GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, bool, error) {
	var e resaleShareEntry
	found, err := c.redis.GetJSON(ctx, resaleShareKeyPrefix+id, &e)
	if err != nil || !found {
		return entities.ResaleShare{}, false, err
	}
	return entities.ResaleShare(e), true, nil
}

func (c *SnapshotCache) SetResaleShare(ctx context.Context, s entities.ResaleShare) error {
	return c.redis.SetJSON(ctx, resaleShareKeyPrefix+s.ID, resaleShareEntry(s), c.ttl)
}
