package request

import (
	"assistencia_os/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateResaleRequest struct {
	Cliente       string           `json:"cliente"`
	Marca         string           `json:"marca" binding:"required"`
	Modelo        string           `json:"modelo" binding:"required"`
	ValorAparelho decimal.Decimal  `json:"valor_aparelho"`
	ValorPecas    decimal.Decimal  `json:"valor_pecas"`
	ValorEstimado *decimal.Decimal `json:"valor_estimado"`
}

func (r CreateResaleRequest) ToInput() usecase.CreateResaleInput {
	in := usecase.CreateResaleInput{
		Customer:   r.Cliente,
		Brand:      r.Marca,
		Model:      r.Modelo,
		DeviceCost: r.ValorAparelho,
		PartsCost:  r.ValorPecas,
	}
	if r.ValorEstimado != nil {
		in.EstimatedPrice = decimal.NewNullDecimal(*r.ValorEstimado)
	}
	return in
}

type SellRequest struct {
	ValorVendido decimal.Decimal `json:"valor_vendido"`
}
