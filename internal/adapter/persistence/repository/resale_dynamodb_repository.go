package repository

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultResalesTableName = "resales"

type resaleItem struct {
	ID            string `dynamodbav:"id"`
	Cliente       string `dynamodbav:"cliente,omitempty"`
	Marca         string `dynamodbav:"marca"`
	Modelo        string `dynamodbav:"modelo"`
	ValorAparelho string `dynamodbav:"valorAparelho,omitempty"`
	ValorPecas    string `dynamodbav:"valorPecas,omitempty"`
	ValorEstimado string `dynamodbav:"valorEstimado,omitempty"`
	ValorVendido  string `dynamodbav:"valorVendido,omitempty"`
	Lucro         string `dynamodbav:"lucro,omitempty"`
	Status        string `dynamodbav:"status"`
	CriadoEm      string `dynamodbav:"criadoEm"`
	VendidoEm     string `dynamodbav:"vendidoEm,omitempty"`
	CanceladoEm   string `dynamodbav:"canceladoEm,omitempty"`
}

// ResaleDynamoRepository persists ResaleItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ResaleDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.IResaleRepository = (*ResaleDynamoRepository)(nil)

func NewResaleDynamoRepository(ddb dynamoAPI, tableName string, log *zap.Logger) *ResaleDynamoRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResaleDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultResalesTableName),
		log:       log.Named("resales_repo"),
	}
}

func (r *ResaleDynamoRepository) Create(ctx context.Context, it entities.ResaleItem) (entities.ResaleItem, error) {
	av, err := attributevalue.MarshalMap(toResaleItem(it))
	if err != nil {
		return entities.ResaleItem{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ResaleItem{}, err
	}
	return it, nil
}

func (r *ResaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.ResaleItem, error) {
	av, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.ResaleItem{}, err
	}
	return decodeResale(av)
}

func (r *ResaleDynamoRepository) List(ctx context.Context) ([]entities.ResaleItem, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ResaleItem, 0, len(items))
	for _, av := range items {
		it, err := decodeResale(av)
		if err != nil {
			r.log.Warn("skipping resale item", zap.Error(err))
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *ResaleDynamoRepository) MarkSold(ctx context.Context, id string, soldPrice, profit decimal.Decimal, at time.Time) (entities.ResaleItem, error) {
	av, err := updateByID(ctx, r.ddb, r.tableName, id,
		"SET #status = :sold, #price = :price, #profit = :profit, #soldAt = :at",
		// Older records without a status decode as Em estoque.
		"(#status = :stock OR attribute_not_exists(#status))",
		map[string]types.AttributeValue{
			":sold":   stringAttr(string(entities.ResaleStatusVendido)),
			":stock":  stringAttr(string(entities.ResaleStatusEmEstoque)),
			":price":  stringAttr(soldPrice.String()),
			":profit": stringAttr(profit.String()),
			":at":     stringAttr(formatTime(at)),
		},
		map[string]string{
			"#status": "status",
			"#price":  "valorVendido",
			"#profit": "lucro",
			"#soldAt": "vendidoEm",
		},
	)
	if err != nil {
		return entities.ResaleItem{}, err
	}
	return decodeResale(av)
}

func (r *ResaleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *ResaleDynamoRepository) RevertSale(ctx context.Context, id string, at time.Time) (entities.ResaleItem, error) {
	av, err := updateByID(ctx, r.ddb, r.tableName, id,
		"SET #status = :stock, #cancelledAt = :at REMOVE #price, #profit, #soldAt",
		"#status = :sold",
		map[string]types.AttributeValue{
			":sold":  stringAttr(string(entities.ResaleStatusVendido)),
			":stock": stringAttr(string(entities.ResaleStatusEmEstoque)),
			":at":    stringAttr(formatTime(at)),
		},
		map[string]string{
			"#status":      "status",
			"#cancelledAt": "canceladoEm",
			"#price":       "valorVendido",
			"#profit":      "lucro",
			"#soldAt":      "vendidoEm",
		},
	)
	if err != nil {
		return entities.ResaleItem{}, err
	}
	return decodeResale(av)
}

func decodeResale(av map[string]types.AttributeValue) (entities.ResaleItem, error) {
	if len(av) == 0 {
		return entities.ResaleItem{}, nil
	}
	var it resaleItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ResaleItem{}, corrupt("resale: %v", err)
	}
	return fromResaleItem(it)
}

func toResaleItem(r entities.ResaleItem) resaleItem {
	return resaleItem{
		ID:            r.ID,
		Cliente:       r.Customer,
		Marca:         r.Brand,
		Modelo:        r.Model,
		ValorAparelho: moneyToString(r.DeviceCost),
		ValorPecas:    moneyToString(r.PartsCost),
		ValorEstimado: moneyToString(r.EstimatedPrice),
		ValorVendido:  moneyToString(r.SoldPrice),
		Lucro:         moneyToString(r.Profit),
		Status:        string(r.Status),
		CriadoEm:      formatTime(r.CreatedAt),
		VendidoEm:     formatTimePtr(r.SoldAt),
		CanceladoEm:   formatTimePtr(r.CancelledAt),
	}
}

func fromResaleItem(it resaleItem) (entities.ResaleItem, error) {
	if it.ID == "" {
		return entities.ResaleItem{}, corrupt("resale item without id")
	}
	status := entities.ResaleStatusEmEstoque
	if it.Status != "" {
		s, ok := entities.ParseResaleStatus(it.Status)
		if !ok {
			return entities.ResaleItem{}, corrupt("resale item %s has unknown status %q", it.ID, it.Status)
		}
		status = s
	}

	return entities.ResaleItem{
		ID:             it.ID,
		Customer:       it.Cliente,
		Brand:          it.Marca,
		Model:          it.Modelo,
		DeviceCost:     moneyFromString(it.ValorAparelho),
		PartsCost:      moneyFromString(it.ValorPecas),
		EstimatedPrice: moneyFromString(it.ValorEstimado),
		SoldPrice:      moneyFromString(it.ValorVendido),
		Profit:         moneyFromString(it.Lucro),
		Status:         status,
		CreatedAt:      parseTime(it.CriadoEm),
		SoldAt:         parseTimePtr(it.VendidoEm),
		CancelledAt:    parseTimePtr(it.CanceladoEm),
	}, nil
}
