package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderShare_ProjectsCustomerSafeFields(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	o := ServiceOrder{
		ID:           "os-1",
		Customer:     "Maria",
		Brand:        "Samsung",
		Model:        "A52",
		Repairs:      []string{"Tela"},
		PartCost:     Money(decimal.RequireFromString("50")),
		LaborPrice:   Money(decimal.RequireFromString("150")),
		TotalPrice:   Money(decimal.RequireFromString("150")),
		Profit:       Money(decimal.RequireFromString("100")),
		Status:       OrderStatusConcluido,
		PhotosBefore: []string{"data:a"},
	}

	s := NewOrderShare(o, "KING OF CELL", now)
	assert.Equal(t, "os-1", s.OrderID)
	assert.True(t, s.TotalPrice.Decimal.Equal(o.TotalPrice.Decimal))
	assert.Equal(t, []string{}, s.Conditions)
	assert.Equal(t, []string{}, s.PhotosAfter)

	o.Repairs[0] = "Bateria"
	assert.Equal(t, "Tela", s.Repairs[0], "snapshot must not alias source slices")
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 150,00", FormatBRL(decimal.RequireFromString("150")))
	assert.Equal(t, "R$ 1.234,57", FormatBRL(decimal.RequireFromString("1234.565")))
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ -1.500,25", FormatBRL(decimal.RequireFromString("-1500.25")))
	assert.Equal(t, "R$ 90.071.992.547.409,93", FormatBRL(decimal.RequireFromString("90071992547409.93")))
	assert.Equal(t, "R$ 12.345.678.901.234.567.890,10", FormatBRL(decimal.RequireFromString("12345678901234567890.1")))
	assert.Equal(t, MissingValue, FormatOptionalBRL(decimal.NullDecimal{}))
}

func TestPeriod_Month(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	p := Month(2026, time.December, loc)
	assert.Equal(t, "2026-12", p.Label)
	assert.True(t, p.Contains(time.Date(2026, 12, 31, 23, 59, 0, 0, loc)))
	assert.False(t, p.Contains(time.Date(2027, 1, 1, 0, 0, 0, 0, loc)))
	assert.True(t, p.Contains(time.Date(2026, 12, 1, 3, 0, 0, 0, time.UTC)))
}
