package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"assistencia_os/internal/domain/entities"
	mock_interfaces "assistencia_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_ChargeOrder(t *testing.T) {
	completed := entities.ServiceOrder{ID: "os-1", Brand: "Samsung", Model: "A10", Status: entities.OrderStatusConcluido, TotalPrice: dec("150")}

	t.Run("order must be completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway, PaymentOptions{MockMode: true}, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo}, nil)

		_, err := uc.ChargeOrder(context.Background(), staff, "os-1", nil)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway, PaymentOptions{}, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(completed, nil)

		_, err := uc.ChargeOrder(context.Background(), staff, "os-1", json.RawMessage(`{"payer":{"email":"a@b.com"}}`))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("amount comes from stored total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway, PaymentOptions{}, nil, nil)
		uc.now = fixedClock

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(completed, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if req["transaction_amount"] != 150.0 {
				t.Fatalf("expected amount 150, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "os-1" {
				t.Fatalf("expected external_reference os-1, got %v", req["external_reference"])
			}
			return "123", "approved", json.RawMessage(`{"id":123}`), nil
		})
		orders.EXPECT().UpdatePayment(gomock.Any(), "os-1", entities.OrderPayment{ProviderID: "123", Status: "approved", PaidAt: fixedClock()}).
			Return(entities.ServiceOrder{ID: "os-1", Payment: &entities.OrderPayment{ProviderID: "123", Status: "approved"}}, nil)

		got, err := uc.ChargeOrder(context.Background(), staff, "os-1",
			json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix","payer":{"email":"cliente@exemplo.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment == nil || got.Payment.ProviderID != "123" {
			t.Fatalf("unexpected payment: %+v", got.Payment)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway, PaymentOptions{MockMode: true}, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(completed, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"status":401,"error":"unauthorized"}`))

		_, err := uc.ChargeOrder(context.Background(), staff, "os-1", nil)
		if !errors.Is(err, ErrPayment) {
			t.Fatalf("expected ErrPayment, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, mock_interfaces.NewMockIPaymentGateway(ctrl), PaymentOptions{MockMode: true}, nil, nil)

		paid := completed
		paid.Payment = &entities.OrderPayment{ProviderID: "1"}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(paid, nil)

		_, err := uc.ChargeOrder(context.Background(), staff, "os-1", nil)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestClassifyGatewayError(t *testing.T) {
	cases := map[string]string{
		`{"message":"Customer not found","code":2002}`: "customer not found",
		`{"status":400,"error":"bad_request"}`:         "bad request",
		"connection reset":                             "provider error",
	}
	for raw, want := range cases {
		if got := classifyGatewayError(errors.New(raw)); got != want {
			t.Fatalf("%q: expected %q, got %q", raw, want, got)
		}
	}
}
