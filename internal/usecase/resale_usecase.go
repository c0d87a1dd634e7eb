package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateResaleInput is the resale intake form.
type CreateResaleInput struct {
	Customer       string
	Brand          string
	Model          string
	DeviceCost     decimal.Decimal
	PartsCost      decimal.Decimal
	EstimatedPrice decimal.NullDecimal
}

// IResaleUseCase exposes the resale inventory ("Vendas" screens).
type IResaleUseCase interface {
	CreateResale(ctx context.Context, session entities.Session, in CreateResaleInput) (entities.ResaleItem, error)
	GetResale(ctx context.Context, id string) (entities.ResaleItem, error)
	ListResales(ctx context.Context, status entities.ResaleStatus) ([]entities.ResaleItem, error)
	MarkSold(ctx context.Context, session entities.Session, id string, soldPrice decimal.Decimal) (entities.ResaleItem, error)
	CancelSale(ctx context.Context, session entities.Session, id string) (entities.ResaleItem, error)
	DeleteResale(ctx context.Context, session entities.Session, id string) error
}

type ResaleUseCase struct {
	repo interfaces.IResaleRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IResaleUseCase = (*ResaleUseCase)(nil)

func NewResaleUseCase(repo interfaces.IResaleRepository, log *zap.Logger) *ResaleUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResaleUseCase{
		repo: repo,
		log:  log.Named("resale"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *ResaleUseCase) CreateResale(ctx context.Context, session entities.Session, in CreateResaleInput) (entities.ResaleItem, error) {
	if !session.IsAuthenticated() {
		return entities.ResaleItem{}, ErrUnauthenticated
	}

	brand := strings.TrimSpace(in.Brand)
	model := strings.TrimSpace(in.Model)
	if brand == "" {
		return entities.ResaleItem{}, validationError("marca is required")
	}
	if model == "" {
		return entities.ResaleItem{}, validationError("modelo is required")
	}
	if in.DeviceCost.IsNegative() || in.PartsCost.IsNegative() {
		return entities.ResaleItem{}, validationError("costs must not be negative")
	}
	if in.EstimatedPrice.Valid && in.EstimatedPrice.Decimal.IsNegative() {
		return entities.ResaleItem{}, validationError("valorEstimado must not be negative")
	}

	r := entities.ResaleItem{
		ID:             uuid.NewString(),
		Customer:       strings.TrimSpace(in.Customer),
		Brand:          brand,
		Model:          model,
		DeviceCost:     entities.Money(in.DeviceCost),
		PartsCost:      entities.Money(in.PartsCost),
		EstimatedPrice: in.EstimatedPrice,
		Status:         entities.ResaleStatusEmEstoque,
		CreatedAt:      u.now(),
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.ResaleItem{}, persistError(err)
	}
	u.log.Info("resale item created", zap.String("resale_id", created.ID), zap.String("by", session.UID))
	return created, nil
}

func (u *ResaleUseCase) GetResale(ctx context.Context, id string) (entities.ResaleItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ResaleItem{}, validationError("invalid resale id")
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ResaleItem{}, fetchError(err)
	}
	if r.ID == "" {
		return entities.ResaleItem{}, ErrResaleNotFound
	}
	return r, nil
}

// ListResales returns items newest first. An empty status lists everything.
func (u *ResaleUseCase) ListResales(ctx context.Context, status entities.ResaleStatus) ([]entities.ResaleItem, error) {
	if status != "" && !status.IsValid() {
		return nil, validationError("unknown status %q", status)
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fetchError(err)
	}

	out := make([]entities.ResaleItem, 0, len(all))
	for _, r := range all {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *ResaleUseCase) MarkSold(ctx context.Context, session entities.Session, id string, soldPrice decimal.Decimal) (entities.ResaleItem, error) {
	if !session.IsAuthenticated() {
		return entities.ResaleItem{}, ErrUnauthenticated
	}
	if !soldPrice.IsPositive() {
		return entities.ResaleItem{}, validationError("valorVendido must be positive")
	}

	current, err := u.GetResale(ctx, id)
	if err != nil {
		return entities.ResaleItem{}, err
	}
	if current.Status != entities.ResaleStatusEmEstoque {
		return entities.ResaleItem{}, fmt.Errorf("%w: item is %s, expected %s",
			ErrInvalidState, current.Status, entities.ResaleStatusEmEstoque)
	}

	profit := soldPrice.Sub(current.CostBasis())
	updated, err := u.repo.MarkSold(ctx, current.ID, soldPrice, profit, u.now())
	if err != nil {
		return entities.ResaleItem{}, persistError(err)
	}
	if updated.ID == "" {
		return entities.ResaleItem{}, fmt.Errorf("%w: item is no longer %s", ErrInvalidState, entities.ResaleStatusEmEstoque)
	}
	u.log.Info("resale item sold",
		zap.String("resale_id", updated.ID),
		zap.String("sold_price", soldPrice.String()),
		zap.String("by", session.UID),
	)
	return updated, nil
}

func (u *ResaleUseCase) CancelSale(ctx context.Context, session entities.Session, id string) (entities.ResaleItem, error) {
	if !session.IsAuthenticated() {
		return entities.ResaleItem{}, ErrUnauthenticated
	}

	current, err := u.GetResale(ctx, id)
	if err != nil {
		return entities.ResaleItem{}, err
	}
	if current.Status != entities.ResaleStatusVendido {
		return entities.ResaleItem{}, fmt.Errorf("%w: item is %s, expected %s",
			ErrInvalidState, current.Status, entities.ResaleStatusVendido)
	}

	updated, err := u.repo.RevertSale(ctx, current.ID, u.now())
	if err != nil {
		return entities.ResaleItem{}, persistError(err)
	}
	if updated.ID == "" {
		return entities.ResaleItem{}, fmt.Errorf("%w: item is no longer %s", ErrInvalidState, entities.ResaleStatusVendido)
	}
	u.log.Info("resale sale cancelled", zap.String("resale_id", updated.ID), zap.String("by", session.UID))
	return updated, nil
}

// DeleteResale removes an item that was registered by mistake. Sold items
// carry revenue and must have the sale cancelled first.
func (u *ResaleUseCase) DeleteResale(ctx context.Context, session entities.Session, id string) error {
	if !session.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !session.IsAdmin() {
		return fmt.Errorf("%w: only %s can delete resale items", ErrForbidden, entities.RoleAdmin)
	}

	current, err := u.GetResale(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == entities.ResaleStatusVendido {
		return fmt.Errorf("%w: cancel the sale before deleting a %s item", ErrInvalidState, entities.ResaleStatusVendido)
	}

	deleted, err := u.repo.Delete(ctx, current.ID)
	if err != nil {
		return persistError(err)
	}
	if !deleted {
		return ErrResaleNotFound
	}
	u.log.Info("resale item deleted", zap.String("resale_id", current.ID), zap.String("by", session.UID))
	return nil
}
