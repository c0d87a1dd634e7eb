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

// OrderView selects a slice of the order collection for listing screens.
type OrderView string

const (
	OrderViewActive    OrderView = "active"
	OrderViewCompleted OrderView = "completed"
	OrderViewHistory   OrderView = "history"
	OrderViewAll       OrderView = "all"
)

func (v OrderView) IsValid() bool {
	switch v {
	case OrderViewActive, OrderViewCompleted, OrderViewHistory, OrderViewAll:
		return true
	}
	return false
}

func (v OrderView) includes(s entities.OrderStatus) bool {
	switch v {
	case OrderViewActive:
		return !s.IsTerminal()
	case OrderViewCompleted:
		return s == entities.OrderStatusConcluido
	case OrderViewHistory:
		return s.IsTerminal()
	}
	return true
}

// CreateOrderInput is the intake form.
type CreateOrderInput struct {
	Customer       string
	Phone          string
	Brand          string
	Model          string
	Repairs        []string
	OtherRepair    string
	Conditions     []string
	OtherCondition string
	PartCost       decimal.Decimal
	LaborPrice     decimal.Decimal
	PhotosBefore   []string
}

// IOrderUseCase exposes the order lifecycle.
//
//   - intake => CreateOrder()
//   - "Iniciar reparo" / "Concluir" / "Cancelar" => UpdateStatus() and shortcuts
//   - photo editing session "Salvar fotos" => SavePhotos()
//   - history screen delete => DeleteOrder()

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, session entities.Session, in CreateOrderInput) (entities.ServiceOrder, error)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListOrders(ctx context.Context, view OrderView) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, session entities.Session, id string, target entities.OrderStatus) (entities.ServiceOrder, error)
	StartRepair(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error)
	Complete(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error)
	SavePhotos(ctx context.Context, session entities.Session, id string, before, after []string) (entities.PhotoSaveResult, error)
	DeleteOrder(ctx context.Context, session entities.Session, id string) error
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	log     *zap.Logger
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, log *zap.Logger, metrics interfaces.IMetricsRecorder) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &OrderUseCase{
		repo:    repo,
		log:     log.Named("order"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, session entities.Session, in CreateOrderInput) (entities.ServiceOrder, error) {
	if !session.IsAuthenticated() {
		return entities.ServiceOrder{}, ErrUnauthenticated
	}

	customer := strings.TrimSpace(in.Customer)
	model := strings.TrimSpace(in.Model)
	if customer == "" {
		return entities.ServiceOrder{}, validationError("cliente is required")
	}
	if model == "" {
		return entities.ServiceOrder{}, validationError("modelo is required")
	}
	if in.PartCost.IsNegative() {
		return entities.ServiceOrder{}, validationError("valorPeca must not be negative")
	}
	if in.LaborPrice.IsNegative() {
		return entities.ServiceOrder{}, validationError("valorReparo must not be negative")
	}

	photos, rejected := entities.MergePhotos(nil, in.PhotosBefore, entities.MaxPhotosBefore)
	if rejected > 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s accepts at most %d photos, got %d",
			ErrPhotoLimit, entities.PhotoBucketBefore, entities.MaxPhotosBefore, len(photos)+rejected)
	}

	total, profit := entities.OrderPricing(in.PartCost, in.LaborPrice)
	o := entities.ServiceOrder{
		ID:           uuid.NewString(),
		Customer:     customer,
		Phone:        entities.DigitsOnly(in.Phone),
		Brand:        strings.TrimSpace(in.Brand),
		Model:        model,
		Repairs:      withOther(in.Repairs, in.OtherRepair),
		Conditions:   withOther(in.Conditions, in.OtherCondition),
		PartCost:     entities.Money(in.PartCost),
		LaborPrice:   entities.Money(in.LaborPrice),
		TotalPrice:   entities.Money(total),
		Profit:       entities.Money(profit),
		Status:       entities.OrderStatusEmAnalise,
		PhotosBefore: photos,
		PhotosAfter:  []string{},
		CreatedAt:    u.now(),
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, persistError(err)
	}
	u.log.Info("order created", zap.String("order_id", created.ID), zap.String("by", session.UID))
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, validationError("invalid order id")
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, fetchError(err)
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, view OrderView) ([]entities.ServiceOrder, error) {
	if view == "" {
		view = OrderViewAll
	}
	if !view.IsValid() {
		return nil, validationError("unknown view %q", view)
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fetchError(err)
	}

	out := make([]entities.ServiceOrder, 0, len(all))
	for _, o := range all {
		if view.includes(o.Status) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *OrderUseCase) StartRepair(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error) {
	return u.UpdateStatus(ctx, session, id, entities.OrderStatusEmReparo)
}

func (u *OrderUseCase) Complete(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error) {
	return u.UpdateStatus(ctx, session, id, entities.OrderStatusConcluido)
}

func (u *OrderUseCase) Cancel(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error) {
	return u.UpdateStatus(ctx, session, id, entities.OrderStatusCancelado)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, session entities.Session, id string, target entities.OrderStatus) (entities.ServiceOrder, error) {
	if !session.IsAuthenticated() {
		return entities.ServiceOrder{}, ErrUnauthenticated
	}
	if !target.IsValid() {
		return entities.ServiceOrder{}, validationError("unknown status %q", target)
	}

	current, err := u.GetOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	from := current.Status
	if !from.CanTransitionTo(target) {
		u.metrics.ObserveTransition(from.String(), target.String(), "rejected")
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, from, target, u.now())
	if err != nil {
		u.metrics.ObserveTransition(from.String(), target.String(), "error")
		return entities.ServiceOrder{}, persistError(err)
	}
	if updated.ID == "" {
		// Status changed (or the order vanished) between read and write.
		u.metrics.ObserveTransition(from.String(), target.String(), "conflict")
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s is no longer %s", ErrInvalidTransition, current.ShortCode(), from)
	}

	u.metrics.ObserveTransition(from.String(), target.String(), "ok")
	u.log.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", from.String()),
		zap.String("to", target.String()),
		zap.String("by", session.UID),
	)
	return updated, nil
}

func (u *OrderUseCase) SavePhotos(ctx context.Context, session entities.Session, id string, before, after []string) (entities.PhotoSaveResult, error) {
	if !session.IsAuthenticated() {
		return entities.PhotoSaveResult{}, ErrUnauthenticated
	}
	if countNonEmpty(before)+countNonEmpty(after) == 0 {
		return entities.PhotoSaveResult{}, validationError("no photos to save")
	}

	current, err := u.GetOrder(ctx, id)
	if err != nil {
		return entities.PhotoSaveResult{}, err
	}
	if countNonEmpty(after) > 0 && current.Status != entities.OrderStatusConcluido {
		return entities.PhotoSaveResult{}, fmt.Errorf("%w: %s photos require status %s",
			ErrInvalidState, entities.PhotoBucketAfter, entities.OrderStatusConcluido)
	}

	mergedBefore, rejectedBefore := entities.MergePhotos(current.PhotosBefore, before, entities.PhotoBucketBefore.Max())
	mergedAfter, rejectedAfter := entities.MergePhotos(current.PhotosAfter, after, entities.PhotoBucketAfter.Max())

	res := entities.PhotoSaveResult{
		Order:          current,
		AcceptedBefore: len(mergedBefore) - min(len(current.PhotosBefore), entities.PhotoBucketBefore.Max()),
		RejectedBefore: rejectedBefore,
		AcceptedAfter:  len(mergedAfter) - min(len(current.PhotosAfter), entities.PhotoBucketAfter.Max()),
		RejectedAfter:  rejectedAfter,
	}
	u.metrics.ObservePhotos(string(entities.PhotoBucketBefore), res.AcceptedBefore, res.RejectedBefore)
	u.metrics.ObservePhotos(string(entities.PhotoBucketAfter), res.AcceptedAfter, res.RejectedAfter)

	if res.Accepted() > 0 {
		updated, err := u.repo.UpdatePhotos(ctx, current.ID, mergedBefore, mergedAfter)
		if err != nil {
			return entities.PhotoSaveResult{}, persistError(err)
		}
		if updated.ID == "" {
			return entities.PhotoSaveResult{}, ErrOrderNotFound
		}
		res.Order = updated
	}

	if res.Rejected() > 0 {
		u.log.Warn("photo limit exceeded",
			zap.String("order_id", current.ID),
			zap.Int("accepted", res.Accepted()),
			zap.Int("rejected", res.Rejected()),
		)
		return res, fmt.Errorf("%w: accepted %d, rejected %d", ErrPhotoLimit, res.Accepted(), res.Rejected())
	}
	return res, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, session entities.Session, id string) error {
	if !session.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !session.IsAdmin() {
		return fmt.Errorf("%w: only %s can delete orders", ErrForbidden, entities.RoleAdmin)
	}

	current, err := u.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.IsTerminal() {
		return fmt.Errorf("%w: only %s or %s orders can be deleted",
			ErrInvalidState, entities.OrderStatusConcluido, entities.OrderStatusCancelado)
	}

	deleted, err := u.repo.Delete(ctx, current.ID)
	if err != nil {
		return persistError(err)
	}
	if !deleted {
		return ErrOrderNotFound
	}
	u.log.Info("order deleted", zap.String("order_id", current.ID), zap.String("by", session.UID))
	return nil
}

// withOther appends the free-text "Outros" entry to a label list.
func withOther(labels []string, other string) []string {
	out := make([]string, 0, len(labels)+1)
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if other = strings.TrimSpace(other); other != "" {
		out = append(out, "Outros: "+other)
	}
	return out
}

func countNonEmpty(in []string) int {
	n := 0
	for _, s := range in {
		if s != "" {
			n++
		}
	}
	return n
}
