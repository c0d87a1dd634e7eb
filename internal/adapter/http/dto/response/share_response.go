package response

import (
	"assistencia_os/internal/domain/entities"
)

// ShareLinkResponse is returned to staff after publishing a receipt.
type ShareLinkResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Mensagem string `json:"mensagem"`
	DeepLink string `json:"deep_link"`
}

// OrderShareResponse is the public receipt. It never exposes internal figures.
type OrderShareResponse struct {
	ID                  string   `json:"id"`
	LojaNome            string   `json:"loja_nome"`
	Codigo              string   `json:"codigo"`
	Cliente             string   `json:"cliente"`
	Marca               string   `json:"marca"`
	Modelo              string   `json:"modelo"`
	Reparos             []string `json:"reparos"`
	Estado              []string `json:"estado"`
	ValorTotal          *string  `json:"valor_total"`
	ValorTotalFormatado string   `json:"valor_total_formatado"`
	FotosAntes          []string `json:"fotos_antes"`
	FotosDepois         []string `json:"fotos_depois"`
	CriadoEm            string   `json:"criado_em"`
}

func FromOrderShare(s entities.OrderShare) OrderShareResponse {
	return OrderShareResponse{
		ID:                  s.ID,
		LojaNome:            s.StoreName,
		Codigo:              entities.ServiceOrder{ID: s.OrderID}.ShortCode(),
		Cliente:             s.Customer,
		Marca:               s.Brand,
		Modelo:              s.Model,
		Reparos:             nonNilStrings(s.Repairs),
		Estado:              nonNilStrings(s.Conditions),
		ValorTotal:          optionalAmount(s.TotalPrice),
		ValorTotalFormatado: entities.FormatOptionalBRL(s.TotalPrice),
		FotosAntes:          nonNilStrings(s.PhotosBefore),
		FotosDepois:         nonNilStrings(s.PhotosAfter),
		CriadoEm:            formatTime(s.CreatedAt),
	}
}

type ResaleShareResponse struct {
	ID                     string  `json:"id"`
	LojaNome               string  `json:"loja_nome"`
	Marca                  string  `json:"marca"`
	Modelo                 string  `json:"modelo"`
	ValorEstimado          *string `json:"valor_estimado"`
	ValorVendido           *string `json:"valor_vendido"`
	ValorVendidoFormatado  string  `json:"valor_vendido_formatado"`
	ValorEstimadoFormatado string  `json:"valor_estimado_formatado"`
	VendidoEm              *string `json:"vendido_em"`
	CriadoEm               string  `json:"criado_em"`
}

func FromResaleShare(s entities.ResaleShare) ResaleShareResponse {
	return ResaleShareResponse{
		ID:                     s.ID,
		LojaNome:               s.StoreName,
		Marca:                  s.Brand,
		Modelo:                 s.Model,
		ValorEstimado:          optionalAmount(s.EstimatedPrice),
		ValorVendido:           optionalAmount(s.SoldPrice),
		ValorVendidoFormatado:  entities.FormatOptionalBRL(s.SoldPrice),
		ValorEstimadoFormatado: entities.FormatOptionalBRL(s.EstimatedPrice),
		VendidoEm:              formatTimePtr(s.SoldAt),
		CriadoEm:               formatTime(s.CreatedAt),
	}
}
