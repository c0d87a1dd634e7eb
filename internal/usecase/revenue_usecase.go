package usecase

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRevenueUseCase produces the cost/profit dashboards.
type IRevenueUseCase interface {
	MonthlySummary(ctx context.Context, year int, month int) (entities.PeriodSummary, error)
	DailySummary(ctx context.Context, date time.Time) (entities.PeriodSummary, error)
}

// RevenueUseCase is read-only: it never writes to either collection.
type RevenueUseCase struct {
	orders  interfaces.IOrderRepository
	resales interfaces.IResaleRepository
	loc     *time.Location
	log     *zap.Logger
	now     func() time.Time
}

var _ IRevenueUseCase = (*RevenueUseCase)(nil)

func NewRevenueUseCase(orders interfaces.IOrderRepository, resales interfaces.IResaleRepository, loc *time.Location, log *zap.Logger) *RevenueUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RevenueUseCase{
		orders:  orders,
		resales: resales,
		loc:     loc,
		log:     log.Named("revenue"),
		now:     time.Now,
	}
}

func (u *RevenueUseCase) MonthlySummary(ctx context.Context, year int, month int) (entities.PeriodSummary, error) {
	if month < 1 || month > 12 {
		return entities.PeriodSummary{}, validationError("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return entities.PeriodSummary{}, validationError("invalid year %d", year)
	}
	return u.summary(ctx, entities.Month(year, time.Month(month), u.loc))
}

// DailySummary uses the calendar date of date as written, interpreted in the
// shop's zone. A zero date means today.
func (u *RevenueUseCase) DailySummary(ctx context.Context, date time.Time) (entities.PeriodSummary, error) {
	if date.IsZero() {
		date = u.now().In(u.loc)
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, u.loc)
	return u.summary(ctx, entities.Day(day, u.loc))
}

func (u *RevenueUseCase) summary(ctx context.Context, p entities.Period) (entities.PeriodSummary, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.PeriodSummary{}, fetchError(err)
	}
	resales, err := u.resales.List(ctx)
	if err != nil {
		return entities.PeriodSummary{}, fetchError(err)
	}

	s := Summarize(p, orders, resales)
	if s.Unbucketed > 0 {
		u.log.Warn("records without bucket timestamp left out of totals",
			zap.String("period", p.Label),
			zap.Int("count", s.Unbucketed),
		)
	}
	return s, nil
}

// Summarize is the pure aggregation over one snapshot of both collections.
//
// Orders count only when Concluído and resales only when Vendido; every other
// status is skipped, not zero-valued. Stored profit is trusted as is.
// Inventory capital covers every item in stock regardless of period.
func Summarize(p entities.Period, orders []entities.ServiceOrder, resales []entities.ResaleItem) entities.PeriodSummary {
	s := entities.PeriodSummary{Period: p}

	for _, o := range orders {
		if o.Status != entities.OrderStatusConcluido {
			continue
		}
		at := o.BucketTime()
		if at == nil {
			s.Unbucketed++
			continue
		}
		if !p.Contains(*at) {
			continue
		}
		s.Orders = s.Orders.Add(entities.RevenueTotals{
			Revenue: entities.Amount(o.TotalPrice),
			Cost:    entities.Amount(o.PartCost),
			Profit:  entities.Amount(o.Profit),
			Count:   1,
		})
	}

	for _, r := range resales {
		if r.Status == entities.ResaleStatusEmEstoque {
			s.Inventory.CostBasis = s.Inventory.CostBasis.Add(r.CostBasis())
			s.Inventory.Count++
			continue
		}
		if r.Status != entities.ResaleStatusVendido {
			continue
		}
		at := r.BucketTime()
		if at == nil {
			s.Unbucketed++
			continue
		}
		if !p.Contains(*at) {
			continue
		}
		s.Resales = s.Resales.Add(entities.RevenueTotals{
			Revenue: entities.Amount(r.SoldPrice),
			Cost:    r.CostBasis(),
			Profit:  entities.Amount(r.Profit),
			Count:   1,
		})
	}

	s.Combined = s.Orders.Add(s.Resales)
	return s
}
