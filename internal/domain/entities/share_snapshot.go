package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareKind distinguishes the two snapshot collections.
type ShareKind string

const (
	ShareKindOrder  ShareKind = "order"
	ShareKindResale ShareKind = "resale"
)

// OrderShare is the public, immutable receipt of a service order.
//
// It is written once and never updated. It deliberately has no field for
// part cost, labor price or profit.
type OrderShare struct {
	ID         string
	StoreName  string
	Customer   string
	Brand      string
	Model      string
	Repairs    []string
	Conditions []string
	TotalPrice decimal.NullDecimal

	PhotosBefore []string
	PhotosAfter  []string

	CreatedAt time.Time
	OrderID   string
}

// ResaleShare is the public, immutable receipt of a device sale.
type ResaleShare struct {
	ID             string
	StoreName      string
	Brand          string
	Model          string
	EstimatedPrice decimal.NullDecimal
	SoldPrice      decimal.NullDecimal
	SoldAt         *time.Time
	CreatedAt      time.Time
	ResaleID       string
}

// NewOrderShare projects the customer-safe subset of o.
func NewOrderShare(o ServiceOrder, storeName string, createdAt time.Time) OrderShare {
	return OrderShare{
		StoreName:    storeName,
		Customer:     o.Customer,
		Brand:        o.Brand,
		Model:        o.Model,
		Repairs:      cloneStrings(o.Repairs),
		Conditions:   cloneStrings(o.Conditions),
		TotalPrice:   o.TotalPrice,
		PhotosBefore: cloneStrings(o.PhotosBefore),
		PhotosAfter:  cloneStrings(o.PhotosAfter),
		CreatedAt:    createdAt,
		OrderID:      o.ID,
	}
}

// NewResaleShare projects the customer-safe subset of r.
func NewResaleShare(r ResaleItem, storeName string, createdAt time.Time) ResaleShare {
	return ResaleShare{
		StoreName:      storeName,
		Brand:          r.Brand,
		Model:          r.Model,
		EstimatedPrice: r.EstimatedPrice,
		SoldPrice:      r.SoldPrice,
		SoldAt:         r.SoldAt,
		CreatedAt:      createdAt,
		ResaleID:       r.ID,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
