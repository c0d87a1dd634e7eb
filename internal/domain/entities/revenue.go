package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a half-open time window [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Month returns the calendar month in loc.
func Month(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: start.Format("2006-01"),
	}
}

// Day returns the calendar day containing t, in loc.
func Day(t time.Time, loc *time.Location) Period {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, 1),
		Label: start.Format("2006-01-02"),
	}
}

// RevenueTotals holds revenue/cost/profit for one stream.
type RevenueTotals struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
	Count   int
}

func (t RevenueTotals) Add(o RevenueTotals) RevenueTotals {
	return RevenueTotals{
		Revenue: t.Revenue.Add(o.Revenue),
		Cost:    t.Cost.Add(o.Cost),
		Profit:  t.Profit.Add(o.Profit),
		Count:   t.Count + o.Count,
	}
}

// InventoryCapital is the cost basis of devices still in stock. It is a
// snapshot of capital tied up, not a period figure, and never part of profit.
type InventoryCapital struct {
	CostBasis decimal.Decimal
	Count     int
}

// PeriodSummary is the aggregator output for one period.
type PeriodSummary struct {
	Period    Period
	Orders    RevenueTotals
	Resales   RevenueTotals
	Combined  RevenueTotals
	Inventory InventoryCapital

	// Records left out because their bucket timestamp was missing.
	Unbucketed int
}
