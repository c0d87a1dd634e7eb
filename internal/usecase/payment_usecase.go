package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PaymentOptions tunes payload checks for the configured gateway.
type PaymentOptions struct {
	// MockMode relaxes payload requirements; the gateway approves everything.
	MockMode bool
	// Sandbox is true for TEST- access tokens.
	Sandbox            bool
	SandboxPayerEmail  string
	SandboxPayerUserID string
}

// IPaymentUseCase charges the customer for a completed order.
type IPaymentUseCase interface {
	ChargeOrder(ctx context.Context, session entities.Session, orderID string, payload json.RawMessage) (entities.ServiceOrder, error)
}

type PaymentUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	log     *zap.Logger
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, log *zap.Logger, metrics interfaces.IMetricsRecorder) *PaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &PaymentUseCase{
		orders:  orders,
		gateway: gateway,
		opts:    opts,
		log:     log.Named("payment"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) ChargeOrder(ctx context.Context, session entities.Session, orderID string, payload json.RawMessage) (entities.ServiceOrder, error) {
	if !session.IsAuthenticated() {
		return entities.ServiceOrder{}, ErrUnauthenticated
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, validationError("invalid order id")
	}
	if u.gateway == nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: gateway not configured", ErrPayment)
	}

	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.MockMode {
			return entities.ServiceOrder{}, validationError("payment payload must be a JSON object")
		}
		payload = json.RawMessage("{}")
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, fetchError(err)
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusConcluido {
		return entities.ServiceOrder{}, fmt.Errorf("%w: only %s orders can be charged, order is %s",
			ErrInvalidState, entities.OrderStatusConcluido, o.Status)
	}
	if o.Payment != nil && o.Payment.ProviderID != "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s already has payment %s",
			ErrInvalidState, o.ShortCode(), o.Payment.ProviderID)
	}
	if !o.TotalPrice.Valid || !o.TotalPrice.Decimal.IsPositive() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s has no chargeable total", ErrInvalidState, o.ShortCode())
	}

	enriched, err := u.enrichPayload(o, payload)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.log.Info("charging order", zap.String("order_id", o.ID), zap.String("amount", o.TotalPrice.Decimal.StringFixed(2)))
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.metrics.ObservePayment("error")
		u.log.Warn("payment gateway failed", zap.String("order_id", o.ID), zap.Error(err))
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s", ErrPayment, classifyGatewayError(err))
	}

	updated, err := u.orders.UpdatePayment(ctx, o.ID, entities.OrderPayment{
		ProviderID: providerID,
		Status:     providerStatus,
		PaidAt:     u.now(),
	})
	if err != nil {
		u.log.Error("payment approved but not recorded",
			zap.String("order_id", o.ID),
			zap.String("provider_payment_id", providerID),
			zap.Error(err),
		)
		return entities.ServiceOrder{}, persistError(err)
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	u.metrics.ObservePayment(providerStatus)
	u.log.Info("order charged",
		zap.String("order_id", updated.ID),
		zap.String("provider_payment_id", providerID),
		zap.String("provider_status", providerStatus),
		zap.String("by", session.UID),
	)
	return updated, nil
}

// enrichPayload links the payment to the order. The amount always comes
// from the stored total, never from the caller.
func (u *PaymentUseCase) enrichPayload(o entities.ServiceOrder, payload json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.opts.MockMode {
			return nil, validationError("payment payload must be a JSON object")
		}
		req = map[string]any{}
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, validationError("payment_method_id is required")
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return nil, validationError("payer.email or payer.id is required")
		}
	}

	req["external_reference"] = o.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("%s - %s %s", o.ShortCode(), o.Brand, o.Model)
	}
	req["transaction_amount"] = o.TotalPrice.Decimal.Round(2).InexactFloat64()

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.opts.SandboxPayerEmail != "" {
		payer["email"] = u.opts.SandboxPayerEmail
	} else if u.opts.Sandbox {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox || u.opts.SandboxPayerUserID == "" || u.opts.SandboxPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.SandboxPayerUserID {
		return
	}
	payer["email"] = u.opts.SandboxPayerEmail
	delete(payer, "id")
}

func classifyGatewayError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return "customer not found"
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return "invalid users involved"
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return "unauthorized"
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return "bad request"
	}
	return "provider error"
}
