package response

import (
	"time"

	"assistencia_os/internal/domain/entities"
)

type TotalsResponse struct {
	Receita          string `json:"receita"`
	Custo            string `json:"custo"`
	Lucro            string `json:"lucro"`
	Quantidade       int    `json:"quantidade"`
	ReceitaFormatada string `json:"receita_formatada"`
	CustoFormatado   string `json:"custo_formatado"`
	LucroFormatado   string `json:"lucro_formatado"`
}

type InventoryResponse struct {
	Custo          string `json:"custo"`
	Quantidade     int    `json:"quantidade"`
	CustoFormatado string `json:"custo_formatado"`
}

// SummaryResponse is the dashboard payload for one period. Amounts are
// rounded for display only; the underlying totals are summed unrounded.
type SummaryResponse struct {
	Periodo string            `json:"periodo"`
	Inicio  string            `json:"inicio"`
	Fim     string            `json:"fim"`
	Ordens  TotalsResponse    `json:"ordens"`
	Vendas  TotalsResponse    `json:"vendas"`
	Total   TotalsResponse    `json:"total"`
	Estoque InventoryResponse `json:"estoque"`
	SemData int               `json:"sem_data"`
}

func fromTotals(t entities.RevenueTotals) TotalsResponse {
	return TotalsResponse{
		Receita:          amount(t.Revenue),
		Custo:            amount(t.Cost),
		Lucro:            amount(t.Profit),
		Quantidade:       t.Count,
		ReceitaFormatada: entities.FormatBRL(t.Revenue),
		CustoFormatado:   entities.FormatBRL(t.Cost),
		LucroFormatado:   entities.FormatBRL(t.Profit),
	}
}

func FromSummary(s entities.PeriodSummary) SummaryResponse {
	return SummaryResponse{
		Periodo: s.Period.Label,
		Inicio:  s.Period.Start.Format(time.RFC3339),
		Fim:     s.Period.End.Format(time.RFC3339),
		Ordens:  fromTotals(s.Orders),
		Vendas:  fromTotals(s.Resales),
		Total:   fromTotals(s.Combined),
		Estoque: InventoryResponse{
			Custo:          amount(s.Inventory.CostBasis),
			Quantidade:     s.Inventory.Count,
			CustoFormatado: entities.FormatBRL(s.Inventory.CostBasis),
		},
		SemData: s.Unbucketed,
	}
}
