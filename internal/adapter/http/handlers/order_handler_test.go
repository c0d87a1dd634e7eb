package handlers

import (
	"net/http"
	"testing"
	"time"

	"assistencia_os/internal/adapter/http/handlers/mocks"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:         "os-abc123",
		Customer:   "Ana",
		Model:      "A52",
		TotalPrice: entities.Money(decimal.RequireFromString("350")),
		Status:     entities.OrderStatusEmAnalise,
		CreatedAt:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"cliente":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("photo limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testSession, gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrPhotoLimit)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"cliente":"Ana","modelo":"A52","fotos_antes":["a","b","c","d"]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), testSession, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Session, in usecase.CreateOrderInput) (entities.ServiceOrder, error) {
				if in.Customer != "Ana" || in.LaborPrice.String() != "350" || in.PartCost.String() != "120" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleOrder(), nil
			})

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"cliente":"Ana","modelo":"A52","valor_peca":120,"valor_reparo":"350"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["codigo"] != "OS #ABC123" {
			t.Fatalf("unexpected codigo: %v", body["codigo"])
		}
		if body["valor_total_formatado"] != "R$ 350,00" {
			t.Fatalf("unexpected total: %v", body["valor_total_formatado"])
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/orders/:id", NewOrderHandler(uc).GetOrder)

	uc.EXPECT().GetOrder(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

	w := doJSON(r, http.MethodGet, "/v1/orders/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if decodeBody(t, w)["code"] != "ORDER_NOT_FOUND" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/orders", NewOrderHandler(uc).ListOrders)

	uc.EXPECT().ListOrders(gomock.Any(), usecase.OrderViewActive).Return([]entities.ServiceOrder{sampleOrder()}, nil)
	uc.EXPECT().ListOrders(gomock.Any(), usecase.OrderViewAll).Return(nil, nil)

	w := doJSON(r, http.MethodGet, "/v1/orders?view=active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/v1/orders", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PATCH("/v1/orders/:id/status", NewOrderHandler(uc).UpdateStatus)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"Entregue"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PATCH("/v1/orders/:id/status", NewOrderHandler(uc).UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testSession, "os-1", entities.OrderStatusConcluido).Return(entities.ServiceOrder{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"concluido"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("shortcuts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)
		r := newTestRouter()
		r.POST("/v1/orders/:id/start", h.StartRepair)
		r.POST("/v1/orders/:id/complete", h.Complete)
		r.POST("/v1/orders/:id/cancel", h.Cancel)

		started := sampleOrder()
		started.Status = entities.OrderStatusEmReparo
		uc.EXPECT().StartRepair(gomock.Any(), testSession, "os-1").Return(started, nil)
		uc.EXPECT().Complete(gomock.Any(), testSession, "os-1").Return(entities.ServiceOrder{}, usecase.ErrInvalidTransition)
		uc.EXPECT().Cancel(gomock.Any(), testSession, "os-1").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodPost, "/v1/orders/os-1/start", ""); w.Code != http.StatusOK || decodeBody(t, w)["status"] != "Em reparo" {
			t.Fatalf("unexpected start response %d %s", w.Code, w.Body.String())
		}
		if w := doJSON(r, http.MethodPost, "/v1/orders/os-1/complete", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/orders/os-1/cancel", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SavePhotos(t *testing.T) {
	t.Run("partial accept returns counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PUT("/v1/orders/:id/photos", NewOrderHandler(uc).SavePhotos)

		result := entities.PhotoSaveResult{Order: sampleOrder(), AcceptedBefore: 1, RejectedBefore: 2}
		uc.EXPECT().SavePhotos(gomock.Any(), testSession, "os-1", []string{"a", "b", "c"}, nil).Return(result, usecase.ErrPhotoLimit)

		w := doJSON(r, http.MethodPut, "/v1/orders/os-1/photos", `{"fotos_antes":["a","b","c"]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details, ok := decodeBody(t, w)["details"].(map[string]any)
		if !ok {
			t.Fatalf("expected details, got %s", w.Body.String())
		}
		if details["aceitas_antes"] != 1.0 || details["recusadas_antes"] != 2.0 {
			t.Fatalf("unexpected details: %v", details)
		}
	})

	t.Run("after photos on open order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PUT("/v1/orders/:id/photos", NewOrderHandler(uc).SavePhotos)

		uc.EXPECT().SavePhotos(gomock.Any(), testSession, "os-1", nil, []string{"x"}).Return(entities.PhotoSaveResult{}, usecase.ErrInvalidState)

		w := doJSON(r, http.MethodPut, "/v1/orders/os-1/photos", `{"fotos_depois":["x"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PUT("/v1/orders/:id/photos", NewOrderHandler(uc).SavePhotos)

		uc.EXPECT().SavePhotos(gomock.Any(), testSession, "os-1", []string{"a"}, nil).Return(entities.PhotoSaveResult{Order: sampleOrder(), AcceptedBefore: 1}, nil)

		w := doJSON(r, http.MethodPut, "/v1/orders/os-1/photos", `{"fotos_antes":["a"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter()
	r.DELETE("/v1/orders/:id", NewOrderHandler(uc).DeleteOrder)

	uc.EXPECT().DeleteOrder(gomock.Any(), testSession, "os-1").Return(usecase.ErrForbidden)
	uc.EXPECT().DeleteOrder(gomock.Any(), testSession, "os-2").Return(nil)

	if w := doJSON(r, http.MethodDelete, "/v1/orders/os-1", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/orders/os-2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
