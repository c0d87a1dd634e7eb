package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultStoreName = "KING OF CELL"

// IShareUseCase publishes and serves the public receipt snapshots.
//
// Publishing is a read of the live record followed by a single write of a
// new snapshot; the two steps are not transactional.
type IShareUseCase interface {
	PublishOrder(ctx context.Context, session entities.Session, orderID string) (entities.OrderShare, error)
	PublishResale(ctx context.Context, session entities.Session, resaleID string) (entities.ResaleShare, error)
	GetOrderShare(ctx context.Context, id string) (entities.OrderShare, error)
	GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, error)
}

type ShareUseCase struct {
	orders    interfaces.IOrderRepository
	resales   interfaces.IResaleRepository
	shares    interfaces.IShareRepository
	cache     interfaces.ISnapshotCache
	storeName string
	log       *zap.Logger
	metrics   interfaces.IMetricsRecorder
	now       func() time.Time
}

var _ IShareUseCase = (*ShareUseCase)(nil)

// NewShareUseCase wires the publisher. cache may be nil.
func NewShareUseCase(
	orders interfaces.IOrderRepository,
	resales interfaces.IResaleRepository,
	shares interfaces.IShareRepository,
	cache interfaces.ISnapshotCache,
	storeName string,
	log *zap.Logger,
	metrics interfaces.IMetricsRecorder,
) *ShareUseCase {
	if strings.TrimSpace(storeName) == "" {
		storeName = DefaultStoreName
	}
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &ShareUseCase{
		orders:    orders,
		resales:   resales,
		shares:    shares,
		cache:     cache,
		storeName: storeName,
		log:       log.Named("share"),
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ShareUseCase) PublishOrder(ctx context.Context, session entities.Session, orderID string) (entities.OrderShare, error) {
	if !session.IsAuthenticated() {
		return entities.OrderShare{}, ErrUnauthenticated
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderShare{}, validationError("invalid order id")
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderShare{}, fetchError(err)
	}
	if o.ID == "" {
		return entities.OrderShare{}, ErrOrderNotFound
	}

	snap := entities.NewOrderShare(o, u.storeName, u.now())
	snap.ID = uuid.NewString()

	created, err := u.shares.CreateOrderShare(ctx, snap)
	if err != nil {
		u.metrics.ObservePublish(string(entities.ShareKindOrder), "error")
		return entities.OrderShare{}, fmt.Errorf("%w: %w", ErrPublish, err)
	}
	u.metrics.ObservePublish(string(entities.ShareKindOrder), "ok")
	u.log.Info("order share published",
		zap.String("share_id", created.ID),
		zap.String("order_id", o.ID),
		zap.String("by", session.UID),
	)
	return created, nil
}

func (u *ShareUseCase) PublishResale(ctx context.Context, session entities.Session, resaleID string) (entities.ResaleShare, error) {
	if !session.IsAuthenticated() {
		return entities.ResaleShare{}, ErrUnauthenticated
	}
	resaleID = strings.TrimSpace(resaleID)
	if resaleID == "" {
		return entities.ResaleShare{}, validationError("invalid resale id")
	}

	r, err := u.resales.GetByID(ctx, resaleID)
	if err != nil {
		return entities.ResaleShare{}, fetchError(err)
	}
	if r.ID == "" {
		return entities.ResaleShare{}, ErrResaleNotFound
	}
	if r.Status != entities.ResaleStatusVendido {
		u.metrics.ObservePublish(string(entities.ShareKindResale), "rejected")
		return entities.ResaleShare{}, fmt.Errorf("%w: only %s items can be shared, item is %s",
			ErrInvalidState, entities.ResaleStatusVendido, r.Status)
	}

	snap := entities.NewResaleShare(r, u.storeName, u.now())
	snap.ID = uuid.NewString()

	created, err := u.shares.CreateResaleShare(ctx, snap)
	if err != nil {
		u.metrics.ObservePublish(string(entities.ShareKindResale), "error")
		return entities.ResaleShare{}, fmt.Errorf("%w: %w", ErrPublish, err)
	}
	u.metrics.ObservePublish(string(entities.ShareKindResale), "ok")
	u.log.Info("resale share published",
		zap.String("share_id", created.ID),
		zap.String("resale_id", r.ID),
		zap.String("by", session.UID),
	)
	return created, nil
}

// GetOrderShare is public: the snapshot id is the only credential.
func (u *ShareUseCase) GetOrderShare(ctx context.Context, id string) (entities.OrderShare, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderShare{}, ErrShareNotFound
	}

	if u.cache != nil {
		cached, ok, err := u.cache.GetOrderShare(ctx, id)
		if err != nil {
			u.log.Warn("share cache read failed", zap.String("share_id", id), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	s, err := u.shares.GetOrderShare(ctx, id)
	if err != nil {
		return entities.OrderShare{}, fetchError(err)
	}
	if s.ID == "" {
		return entities.OrderShare{}, ErrShareNotFound
	}

	if u.cache != nil {
		if err := u.cache.SetOrderShare(ctx, s); err != nil {
			u.log.Warn("share cache write failed", zap.String("share_id", id), zap.Error(err))
		}
	}
	return s, nil
}

func (u *ShareUseCase) GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ResaleShare{}, ErrShareNotFound
	}

	if u.cache != nil {
		cached, ok, err := u.cache.GetResaleShare(ctx, id)
		if err != nil {
			u.log.Warn("share cache read failed", zap.String("share_id", id), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	s, err := u.shares.GetResaleShare(ctx, id)
	if err != nil {
		return entities.ResaleShare{}, fetchError(err)
	}
	if s.ID == "" {
		return entities.ResaleShare{}, ErrShareNotFound
	}

	if u.cache != nil {
		if err := u.cache.SetResaleShare(ctx, s); err != nil {
			u.log.Warn("share cache write failed", zap.String("share_id", id), zap.Error(err))
		}
	}
	return s, nil
}
