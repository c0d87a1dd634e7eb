package repository

import (
	"context"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOrderSharesTableName  = "order_shares"
	DefaultResaleSharesTableName = "resale_shares"
)

type orderShareItem struct {
	ID          string   `dynamodbav:"id"`
	LojaNome    string   `dynamodbav:"lojaNome"`
	Cliente     string   `dynamodbav:"cliente"`
	Marca       string   `dynamodbav:"marca"`
	Modelo      string   `dynamodbav:"modelo"`
	Reparos     []string `dynamodbav:"reparos"`
	Estado      []string `dynamodbav:"estado"`
	ValorTotal  string   `dynamodbav:"valorTotal,omitempty"`
	FotosAntes  []string `dynamodbav:"fotosAntes"`
	FotosDepois []string `dynamodbav:"fotosDepois"`
	CriadoEm    string   `dynamodbav:"criadoEm"`
	OSID        string   `dynamodbav:"osId"`
}

type resaleShareItem struct {
	ID            string `dynamodbav:"id"`
	LojaNome      string `dynamodbav:"lojaNome"`
	Marca         string `dynamodbav:"marca"`
	Modelo        string `dynamodbav:"modelo"`
	ValorEstimado string `dynamodbav:"valorEstimado,omitempty"`
	ValorVendido  string `dynamodbav:"valorVendido,omitempty"`
	VendidoEm     string `dynamodbav:"vendidoEm,omitempty"`
	CriadoEm      string `dynamodbav:"criadoEm"`
	VendaID       string `dynamodbav:"vendaId"`
}

// ShareDynamoRepository stores the public receipt snapshots, one table per
// kind. Items are only ever put, never updated.

type ShareDynamoRepository struct {
	ddb         dynamoAPI
	orderTable  string
	resaleTable string
}

var _ interfaces.IShareRepository = (*ShareDynamoRepository)(nil)

func NewShareDynamoRepository(ddb dynamoAPI, orderTable, resaleTable string) *ShareDynamoRepository {
	return &ShareDynamoRepository{
		ddb:         ddb,
		orderTable:  tableOrDefault(orderTable, DefaultOrderSharesTableName),
		resaleTable: tableOrDefault(resaleTable, DefaultResaleSharesTableName),
	}
}

func (r *ShareDynamoRepository) CreateOrderShare(ctx context.Context, s entities.OrderShare) (entities.OrderShare, error) {
	av, err := attributevalue.MarshalMap(toOrderShareItem(s))
	if err != nil {
		return entities.OrderShare{}, err
	}
	if err := putNew(ctx, r.ddb, r.orderTable, av); err != nil {
		return entities.OrderShare{}, err
	}
	return s, nil
}

func (r *ShareDynamoRepository) GetOrderShare(ctx context.Context, id string) (entities.OrderShare, error) {
	av, err := getByID(ctx, r.ddb, r.orderTable, id)
	if err != nil || len(av) == 0 {
		return entities.OrderShare{}, err
	}
	return decodeOrderShare(av)
}

func (r *ShareDynamoRepository) CreateResaleShare(ctx context.Context, s entities.ResaleShare) (entities.ResaleShare, error) {
	av, err := attributevalue.MarshalMap(toResaleShareItem(s))
	if err != nil {
		return entities.ResaleShare{}, err
	}
	if err := putNew(ctx, r.ddb, r.resaleTable, av); err != nil {
		return entities.ResaleShare{}, err
	}
	return s, nil
}

func (r *ShareDynamoRepository) GetResaleShare(ctx context.Context, id string) (entities.ResaleShare, error) {
	av, err := getByID(ctx, r.ddb, r.resaleTable, id)
	if err != nil || len(av) == 0 {
		return entities.ResaleShare{}, err
	}
	return decodeResaleShare(av)
}

func decodeOrderShare(av map[string]types.AttributeValue) (entities.OrderShare, error) {
	var it orderShareItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.OrderShare{}, corrupt("order share: %v", err)
	}
	return fromOrderShareItem(it), nil
}

func decodeResaleShare(av map[string]types.AttributeValue) (entities.ResaleShare, error) {
	var it resaleShareItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ResaleShare{}, corrupt("resale share: %v", err)
	}
	return fromResaleShareItem(it), nil
}

func toOrderShareItem(s entities.OrderShare) orderShareItem {
	return orderShareItem{
		ID:          s.ID,
		LojaNome:    s.StoreName,
		Cliente:     s.Customer,
		Marca:       s.Brand,
		Modelo:      s.Model,
		Reparos:     nonNil(s.Repairs),
		Estado:      nonNil(s.Conditions),
		ValorTotal:  moneyToString(s.TotalPrice),
		FotosAntes:  nonNil(s.PhotosBefore),
		FotosDepois: nonNil(s.PhotosAfter),
		CriadoEm:    formatTime(s.CreatedAt),
		OSID:        s.OrderID,
	}
}

func fromOrderShareItem(it orderShareItem) entities.OrderShare {
	return entities.OrderShare{
		ID:           it.ID,
		StoreName:    it.LojaNome,
		Customer:     it.Cliente,
		Brand:        it.Marca,
		Model:        it.Modelo,
		Repairs:      nonNil(it.Reparos),
		Conditions:   nonNil(it.Estado),
		TotalPrice:   moneyFromString(it.ValorTotal),
		PhotosBefore: nonNil(it.FotosAntes),
		PhotosAfter:  nonNil(it.FotosDepois),
		CreatedAt:    parseTime(it.CriadoEm),
		OrderID:      it.OSID,
	}
}

func toResaleShareItem(s entities.ResaleShare) resaleShareItem {
	return resaleShareItem{
		ID:            s.ID,
		LojaNome:      s.StoreName,
		Marca:         s.Brand,
		Modelo:        s.Model,
		ValorEstimado: moneyToString(s.EstimatedPrice),
		ValorVendido:  moneyToString(s.SoldPrice),
		VendidoEm:     formatTimePtr(s.SoldAt),
		CriadoEm:      formatTime(s.CreatedAt),
		VendaID:       s.ResaleID,
	}
}

func fromResaleShareItem(it resaleShareItem) entities.ResaleShare {
	return entities.ResaleShare{
		ID:             it.ID,
		StoreName:      it.LojaNome,
		Brand:          it.Marca,
		Model:          it.Modelo,
		EstimatedPrice: moneyFromString(it.ValorEstimado),
		SoldPrice:      moneyFromString(it.ValorVendido),
		SoldAt:         parseTimePtr(it.VendidoEm),
		CreatedAt:      parseTime(it.CriadoEm),
		ResaleID:       it.VendaID,
	}
}
