package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order (OS).
//
// Domain notes:
//   - Em análise is the intake state and the default for new orders.
//   - Concluído and Cancelado are terminal; there is no re-open.
//   - The transition table lives in CanTransitionTo and nowhere else.
type OrderStatus string

const (
	OrderStatusEmAnalise OrderStatus = "Em análise"
	OrderStatusEmReparo  OrderStatus = "Em reparo"
	OrderStatusConcluido OrderStatus = "Concluído"
	OrderStatusCancelado OrderStatus = "Cancelado"
)

var orderStatuses = []OrderStatus{
	OrderStatusEmAnalise,
	OrderStatusEmReparo,
	OrderStatusConcluido,
	OrderStatusCancelado,
}

// OrderStatuses lists every valid status in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusEmAnalise, OrderStatusEmReparo, OrderStatusConcluido, OrderStatusCancelado:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConcluido || s == OrderStatusCancelado
}

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether target is reachable from s in one step.
// The permitted edges are:
//
//	Em análise -> Em reparo
//	Em reparo  -> Concluído
//	Em análise -> Cancelado
//	Em reparo  -> Cancelado
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusEmAnalise:
		return target == OrderStatusEmReparo || target == OrderStatusCancelado
	case OrderStatusEmReparo:
		return target == OrderStatusConcluido || target == OrderStatusCancelado
	}
	return false
}

// ParseOrderStatus accepts the stored labels plus a few ASCII aliases used by
// API clients that cannot send accents.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.TrimSpace(raw))
	if s.IsValid() {
		return s, true
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "em_analise", "em analise", "analise":
		return OrderStatusEmAnalise, true
	case "em_reparo", "reparo":
		return OrderStatusEmReparo, true
	case "concluido", "concluída", "concluida":
		return OrderStatusConcluido, true
	case "cancelado", "cancelada":
		return OrderStatusCancelado, true
	}
	return "", false
}

// OrderPayment records the provider payment attached to a completed order.
type OrderPayment struct {
	ProviderID string
	Status     string
	PaidAt     time.Time
}

// ServiceOrder is a repair job for one customer's device.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PartCost and LaborPrice are internal-only.
//   - TotalPrice is what the customer sees (equal to LaborPrice).
//   - Profit is computed once at write time and trusted afterwards.
//   - An invalid NullDecimal means the stored value was missing.
type ServiceOrder struct {
	ID         string
	Customer   string
	Phone      string
	Brand      string
	Model      string
	Repairs    []string
	Conditions []string

	PartCost   decimal.NullDecimal
	LaborPrice decimal.NullDecimal
	TotalPrice decimal.NullDecimal
	Profit     decimal.NullDecimal

	Status OrderStatus

	PhotosBefore []string
	PhotosAfter  []string

	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	Payment *OrderPayment
}

// ShortCode renders the human handle printed on receipts, e.g. "OS #A1B2C3".
func (o ServiceOrder) ShortCode() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	if id == "" {
		return "OS"
	}
	return "OS #" + strings.ToUpper(id)
}

// BucketTime is the instant the order is attributed to for period totals:
// completion first, creation as fallback. Nil means the order cannot be
// bucketed and must be left out of period totals.
func (o ServiceOrder) BucketTime() *time.Time {
	if o.CompletedAt != nil && !o.CompletedAt.IsZero() {
		return o.CompletedAt
	}
	if !o.CreatedAt.IsZero() {
		t := o.CreatedAt
		return &t
	}
	return nil
}

// OrderPricing derives the stored figures from the two intake inputs.
func OrderPricing(partCost, laborPrice decimal.Decimal) (total, profit decimal.Decimal) {
	total = laborPrice
	return total, total.Sub(partCost)
}
