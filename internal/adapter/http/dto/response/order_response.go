package response

import (
	"assistencia_os/internal/domain/entities"
)

type PaymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	PagoEm string `json:"pago_em"`
}

// OrderResponse is the staff view of a service order, internal figures included.
type OrderResponse struct {
	ID       string   `json:"id"`
	Codigo   string   `json:"codigo"`
	Cliente  string   `json:"cliente"`
	Telefone string   `json:"telefone"`
	Marca    string   `json:"marca"`
	Modelo   string   `json:"modelo"`
	Reparos  []string `json:"reparos"`
	Estado   []string `json:"estado"`

	ValorPeca           *string `json:"valor_peca"`
	ValorReparo         *string `json:"valor_reparo"`
	ValorTotal          *string `json:"valor_total"`
	Lucro               *string `json:"lucro"`
	ValorTotalFormatado string  `json:"valor_total_formatado"`
	LucroFormatado      string  `json:"lucro_formatado"`

	Status      string   `json:"status"`
	FotosAntes  []string `json:"fotos_antes"`
	FotosDepois []string `json:"fotos_depois"`

	CriadoEm    string  `json:"criado_em"`
	IniciadoEm  *string `json:"iniciado_em"`
	ConcluidoEm *string `json:"concluido_em"`
	CanceladoEm *string `json:"cancelado_em"`

	Pagamento *PaymentResponse `json:"pagamento,omitempty"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	resp := OrderResponse{
		ID:                  o.ID,
		Codigo:              o.ShortCode(),
		Cliente:             o.Customer,
		Telefone:            o.Phone,
		Marca:               o.Brand,
		Modelo:              o.Model,
		Reparos:             nonNilStrings(o.Repairs),
		Estado:              nonNilStrings(o.Conditions),
		ValorPeca:           optionalAmount(o.PartCost),
		ValorReparo:         optionalAmount(o.LaborPrice),
		ValorTotal:          optionalAmount(o.TotalPrice),
		Lucro:               optionalAmount(o.Profit),
		ValorTotalFormatado: entities.FormatOptionalBRL(o.TotalPrice),
		LucroFormatado:      entities.FormatOptionalBRL(o.Profit),
		Status:              o.Status.String(),
		FotosAntes:          nonNilStrings(o.PhotosBefore),
		FotosDepois:         nonNilStrings(o.PhotosAfter),
		CriadoEm:            formatTime(o.CreatedAt),
		IniciadoEm:          formatTimePtr(o.StartedAt),
		ConcluidoEm:         formatTimePtr(o.CompletedAt),
		CanceladoEm:         formatTimePtr(o.CancelledAt),
	}
	if o.Payment != nil {
		resp.Pagamento = &PaymentResponse{
			ID:     o.Payment.ProviderID,
			Status: o.Payment.Status,
			PagoEm: formatTime(o.Payment.PaidAt),
		}
	}
	return resp
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// PhotoSaveResponse reports how many pending photos were kept per bucket.
type PhotoSaveResponse struct {
	Ordem           OrderResponse `json:"ordem"`
	AceitasAntes    int           `json:"aceitas_antes"`
	RecusadasAntes  int           `json:"recusadas_antes"`
	AceitasDepois   int           `json:"aceitas_depois"`
	RecusadasDepois int           `json:"recusadas_depois"`
}

func FromPhotoSaveResult(r entities.PhotoSaveResult) PhotoSaveResponse {
	return PhotoSaveResponse{
		Ordem:           FromOrder(r.Order),
		AceitasAntes:    r.AcceptedBefore,
		RecusadasAntes:  r.RejectedBefore,
		AceitasDepois:   r.AcceptedAfter,
		RecusadasDepois: r.RejectedAfter,
	}
}
