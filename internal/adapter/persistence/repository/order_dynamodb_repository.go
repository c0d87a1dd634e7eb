package repository

import (
	"context"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultOrdersTableName = "orders"

type orderItem struct {
	ID          string   `dynamodbav:"id"`
	Cliente     string   `dynamodbav:"cliente"`
	Telefone    string   `dynamodbav:"telefone,omitempty"`
	Marca       string   `dynamodbav:"marca"`
	Modelo      string   `dynamodbav:"modelo"`
	Reparos     []string `dynamodbav:"reparos"`
	Estado      []string `dynamodbav:"estado"`
	ValorPeca   string   `dynamodbav:"valorPeca,omitempty"`
	ValorReparo string   `dynamodbav:"valorReparo,omitempty"`
	ValorTotal  string   `dynamodbav:"valorTotal,omitempty"`
	Lucro       string   `dynamodbav:"lucro,omitempty"`
	Status      string   `dynamodbav:"status"`
	CriadoEm    string   `dynamodbav:"criadoEm"`
	IniciadoEm  string   `dynamodbav:"iniciadoEm,omitempty"`
	ConcluidoEm string   `dynamodbav:"concluidoEm,omitempty"`
	CanceladoEm string   `dynamodbav:"canceladoEm,omitempty"`
	FotosAntes  []string `dynamodbav:"fotosAntes"`
	FotosDepois []string `dynamodbav:"fotosDepois"`

	PagamentoID     string `dynamodbav:"pagamentoId,omitempty"`
	PagamentoStatus string `dynamodbav:"pagamentoStatus,omitempty"`
	PagoEm          string `dynamodbav:"pagoEm,omitempty"`
}

// OrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes are conditional on the stored status so that two staff
// members racing on the same order cannot both win.

type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string, log *zap.Logger) *OrderDynamoRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultOrdersTableName),
		log:       log.Named("orders_repo"),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	av, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return decodeOrder(av)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceOrder, 0, len(items))
	for _, av := range items {
		o, err := decodeOrder(av)
		if err != nil {
			r.log.Warn("skipping order", zap.Error(err))
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.ServiceOrder, error) {
	tsField := transitionField(to)
	expr := "SET #status = :to"
	names := map[string]string{"#status": "status"}
	vals := map[string]types.AttributeValue{
		":to":   stringAttr(string(to)),
		":from": stringAttr(string(from)),
	}
	if tsField != "" {
		expr += ", #ts = :at"
		names["#ts"] = tsField
		vals[":at"] = stringAttr(formatTime(at))
	}

	// Older records without a status decode as Em análise.
	cond := "#status = :from"
	if from == entities.OrderStatusEmAnalise {
		cond = "(#status = :from OR attribute_not_exists(#status))"
	}

	av, err := updateByID(ctx, r.ddb, r.tableName, id, expr, cond, vals, names)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return decodeOrder(av)
}

func (r *OrderDynamoRepository) UpdatePhotos(ctx context.Context, id string, before, after []string) (entities.ServiceOrder, error) {
	av, err := updateByID(ctx, r.ddb, r.tableName, id,
		"SET #before = :before, #after = :after", "",
		map[string]types.AttributeValue{
			":before": stringList(before),
			":after":  stringList(after),
		},
		map[string]string{
			"#before": "fotosAntes",
			"#after":  "fotosDepois",
		},
	)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return decodeOrder(av)
}

func (r *OrderDynamoRepository) UpdatePayment(ctx context.Context, id string, p entities.OrderPayment) (entities.ServiceOrder, error) {
	av, err := updateByID(ctx, r.ddb, r.tableName, id,
		"SET #pid = :pid, #pstatus = :pstatus, #paid = :paid", "",
		map[string]types.AttributeValue{
			":pid":     stringAttr(p.ProviderID),
			":pstatus": stringAttr(p.Status),
			":paid":    stringAttr(formatTime(p.PaidAt)),
		},
		map[string]string{
			"#pid":     "pagamentoId",
			"#pstatus": "pagamentoStatus",
			"#paid":    "pagoEm",
		},
	)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return decodeOrder(av)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func transitionField(to entities.OrderStatus) string {
	switch to {
	case entities.OrderStatusEmReparo:
		return "iniciadoEm"
	case entities.OrderStatusConcluido:
		return "concluidoEm"
	case entities.OrderStatusCancelado:
		return "canceladoEm"
	}
	return ""
}

// decodeOrder returns a zero order for an empty item.
func decodeOrder(av map[string]types.AttributeValue) (entities.ServiceOrder, error) {
	if len(av) == 0 {
		return entities.ServiceOrder{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ServiceOrder{}, corrupt("order: %v", err)
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	it := orderItem{
		ID:          o.ID,
		Cliente:     o.Customer,
		Telefone:    o.Phone,
		Marca:       o.Brand,
		Modelo:      o.Model,
		Reparos:     nonNil(o.Repairs),
		Estado:      nonNil(o.Conditions),
		ValorPeca:   moneyToString(o.PartCost),
		ValorReparo: moneyToString(o.LaborPrice),
		ValorTotal:  moneyToString(o.TotalPrice),
		Lucro:       moneyToString(o.Profit),
		Status:      string(o.Status),
		CriadoEm:    formatTime(o.CreatedAt),
		IniciadoEm:  formatTimePtr(o.StartedAt),
		ConcluidoEm: formatTimePtr(o.CompletedAt),
		CanceladoEm: formatTimePtr(o.CancelledAt),
		FotosAntes:  nonNil(o.PhotosBefore),
		FotosDepois: nonNil(o.PhotosAfter),
	}
	if o.Payment != nil {
		it.PagamentoID = o.Payment.ProviderID
		it.PagamentoStatus = o.Payment.Status
		it.PagoEm = formatTime(o.Payment.PaidAt)
	}
	return it
}

func fromOrderItem(it orderItem) (entities.ServiceOrder, error) {
	if it.ID == "" {
		return entities.ServiceOrder{}, corrupt("order without id")
	}
	status := entities.OrderStatusEmAnalise
	if it.Status != "" {
		s, ok := entities.ParseOrderStatus(it.Status)
		if !ok {
			return entities.ServiceOrder{}, corrupt("order %s has unknown status %q", it.ID, it.Status)
		}
		status = s
	}

	o := entities.ServiceOrder{
		ID:           it.ID,
		Customer:     it.Cliente,
		Phone:        it.Telefone,
		Brand:        it.Marca,
		Model:        it.Modelo,
		Repairs:      nonNil(it.Reparos),
		Conditions:   nonNil(it.Estado),
		PartCost:     moneyFromString(it.ValorPeca),
		LaborPrice:   moneyFromString(it.ValorReparo),
		TotalPrice:   moneyFromString(it.ValorTotal),
		Profit:       moneyFromString(it.Lucro),
		Status:       status,
		PhotosBefore: nonNil(it.FotosAntes),
		PhotosAfter:  nonNil(it.FotosDepois),
		CreatedAt:    parseTime(it.CriadoEm),
		StartedAt:    parseTimePtr(it.IniciadoEm),
		CompletedAt:  parseTimePtr(it.ConcluidoEm),
		CancelledAt:  parseTimePtr(it.CanceladoEm),
	}
	if it.PagamentoID != "" {
		o.Payment = &entities.OrderPayment{
			ProviderID: it.PagamentoID,
			Status:     it.PagamentoStatus,
			PaidAt:     parseTime(it.PagoEm),
		}
	}
	return o, nil
}
