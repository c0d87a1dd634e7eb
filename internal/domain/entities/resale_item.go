package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ResaleStatus represents the lifecycle of a device bought for resale.
//
// Cancelling a sale returns the item to Em estoque. Cancelado is only kept so
// that records written by older clients still decode; this service never
// writes it.
type ResaleStatus string

const (
	ResaleStatusEmEstoque ResaleStatus = "Em estoque"
	ResaleStatusVendido   ResaleStatus = "Vendido"
	ResaleStatusCancelado ResaleStatus = "Cancelado"
)

func (s ResaleStatus) IsValid() bool {
	switch s {
	case ResaleStatusEmEstoque, ResaleStatusVendido, ResaleStatusCancelado:
		return true
	}
	return false
}

func (s ResaleStatus) String() string {
	return string(s)
}

func ParseResaleStatus(raw string) (ResaleStatus, bool) {
	s := ResaleStatus(strings.TrimSpace(raw))
	if s.IsValid() {
		return s, true
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "em_estoque", "estoque", "disponivel", "disponível":
		return ResaleStatusEmEstoque, true
	case "vendido":
		return ResaleStatusVendido, true
	case "cancelado":
		return ResaleStatusCancelado, true
	}
	return "", false
}

// ResaleItem is a device purchased, repaired and resold by the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SoldPrice, Profit and SoldAt are only populated while Status is Vendido.
type ResaleItem struct {
	ID       string
	Customer string
	Brand    string
	Model    string

	DeviceCost     decimal.NullDecimal
	PartsCost      decimal.NullDecimal
	EstimatedPrice decimal.NullDecimal
	SoldPrice      decimal.NullDecimal
	Profit         decimal.NullDecimal

	Status ResaleStatus

	CreatedAt   time.Time
	SoldAt      *time.Time
	CancelledAt *time.Time
}

// CostBasis is device cost plus parts cost, missing values counting as zero.
func (r ResaleItem) CostBasis() decimal.Decimal {
	return Amount(r.DeviceCost).Add(Amount(r.PartsCost))
}

// BucketTime mirrors ServiceOrder.BucketTime using the sale timestamp.
func (r ResaleItem) BucketTime() *time.Time {
	if r.SoldAt != nil && !r.SoldAt.IsZero() {
		return r.SoldAt
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt
		return &t
	}
	return nil
}
