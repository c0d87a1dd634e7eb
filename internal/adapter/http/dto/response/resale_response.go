package response

import (
	"assistencia_os/internal/domain/entities"
)

type ResaleResponse struct {
	ID      string `json:"id"`
	Cliente string `json:"cliente"`
	Marca   string `json:"marca"`
	Modelo  string `json:"modelo"`

	ValorAparelho  *string `json:"valor_aparelho"`
	ValorPecas     *string `json:"valor_pecas"`
	CustoTotal     string  `json:"custo_total"`
	ValorEstimado  *string `json:"valor_estimado"`
	ValorVendido   *string `json:"valor_vendido"`
	Lucro          *string `json:"lucro"`
	LucroFormatado string  `json:"lucro_formatado"`

	Status      string  `json:"status"`
	CriadoEm    string  `json:"criado_em"`
	VendidoEm   *string `json:"vendido_em"`
	CanceladoEm *string `json:"cancelado_em"`
}

func FromResale(r entities.ResaleItem) ResaleResponse {
	return ResaleResponse{
		ID:             r.ID,
		Cliente:        r.Customer,
		Marca:          r.Brand,
		Modelo:         r.Model,
		ValorAparelho:  optionalAmount(r.DeviceCost),
		ValorPecas:     optionalAmount(r.PartsCost),
		CustoTotal:     amount(r.CostBasis()),
		ValorEstimado:  optionalAmount(r.EstimatedPrice),
		ValorVendido:   optionalAmount(r.SoldPrice),
		Lucro:          optionalAmount(r.Profit),
		LucroFormatado: entities.FormatOptionalBRL(r.Profit),
		Status:         r.Status.String(),
		CriadoEm:       formatTime(r.CreatedAt),
		VendidoEm:      formatTimePtr(r.SoldAt),
		CanceladoEm:    formatTimePtr(r.CancelledAt),
	}
}

func FromResales(items []entities.ResaleItem) []ResaleResponse {
	out := make([]ResaleResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromResale(r))
	}
	return out
}
