package request

import (
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the intake form ("Nova OS").
type CreateOrderRequest struct {
	Cliente     string          `json:"cliente" binding:"required"`
	Telefone    string          `json:"telefone" binding:"omitempty,phone"`
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo" binding:"required"`
	Reparos     []string        `json:"reparos"`
	OutroReparo string          `json:"outro_reparo"`
	Estado      []string        `json:"estado"`
	OutroEstado string          `json:"outro_estado"`
	ValorPeca   decimal.Decimal `json:"valor_peca"`
	ValorReparo decimal.Decimal `json:"valor_reparo"`
	FotosAntes  []string        `json:"fotos_antes"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Customer:       r.Cliente,
		Phone:          r.Telefone,
		Brand:          r.Marca,
		Model:          r.Modelo,
		Repairs:        r.Reparos,
		OtherRepair:    r.OutroReparo,
		Conditions:     r.Estado,
		OtherCondition: r.OutroEstado,
		PartCost:       r.ValorPeca,
		LaborPrice:     r.ValorReparo,
		PhotosBefore:   r.FotosAntes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus accepts both the display label and the snake_case form.
func (r UpdateStatusRequest) ResolveStatus() (entities.OrderStatus, bool) {
	return entities.ParseOrderStatus(r.Status)
}

// SavePhotosRequest carries the photos pending in the editing session.
type SavePhotosRequest struct {
	FotosAntes  []string `json:"fotos_antes"`
	FotosDepois []string `json:"fotos_depois"`
}
