package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"
	mock_interfaces "assistencia_os/internal/usecase/interfaces/mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	staff = entities.Session{UID: "uid-1", Email: "tecnico@loja.com", Role: entities.RoleTecnico}
	admin = entities.Session{UID: "uid-2", Email: "admin@loja.com", Role: entities.RoleAdmin}
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, *mock_interfaces.MockIOrderRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil)
	uc.now = fixedClock
	return uc, repo
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("requires session", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), entities.Session{}, CreateOrderInput{Customer: "Ana", Model: "A10"})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), staff, CreateOrderInput{Customer: "  ", Model: "A10"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), staff, CreateOrderInput{
			Customer: "Ana", Model: "A10", LaborPrice: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("too many initial photos", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), staff, CreateOrderInput{
			Customer: "Ana", Model: "A10", PhotosBefore: []string{"a", "b", "c", "d"},
		})
		if !errors.Is(err, ErrPhotoLimit) {
			t.Fatalf("expected ErrPhotoLimit, got %v", err)
		}
	})

	t.Run("stores derived total and profit", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			return o, nil
		})

		got, err := uc.CreateOrder(context.Background(), staff, CreateOrderInput{
			Customer:     " Ana ",
			Phone:        "(11) 98888-7777",
			Brand:        "Samsung",
			Model:        "A10",
			Repairs:      []string{"Tela", ""},
			OtherRepair:  "botão lateral",
			Conditions:   []string{"Riscado"},
			PartCost:     decimal.RequireFromString("50.00"),
			LaborPrice:   decimal.RequireFromString("150.00"),
			PhotosBefore: []string{"data:image/jpeg;base64,AAA"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !got.TotalPrice.Decimal.Equal(decimal.RequireFromString("150")) {
			t.Fatalf("expected total 150, got %s", got.TotalPrice.Decimal)
		}
		if !got.Profit.Decimal.Equal(decimal.RequireFromString("100")) {
			t.Fatalf("expected profit 100, got %s", got.Profit.Decimal)
		}
		if got.Status != entities.OrderStatusEmAnalise {
			t.Fatalf("expected %s, got %s", entities.OrderStatusEmAnalise, got.Status)
		}
		if got.Customer != "Ana" || got.Phone != "11988887777" {
			t.Fatalf("unexpected normalization: %q %q", got.Customer, got.Phone)
		}
		if len(got.Repairs) != 2 || got.Repairs[1] != "Outros: botão lateral" {
			t.Fatalf("unexpected repairs: %#v", got.Repairs)
		}
		if !got.CreatedAt.Equal(fixedClock()) {
			t.Fatalf("unexpected created at: %v", got.CreatedAt)
		}
		if got.StartedAt != nil || got.CompletedAt != nil || got.CancelledAt != nil {
			t.Fatalf("transition timestamps must be nil on create")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), staff, CreateOrderInput{Customer: gofakeit.Name(), Model: "G8"})
		if !errors.Is(err, ErrPersist) {
			t.Fatalf("expected ErrPersist, got %v", err)
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.GetOrder(context.Background(), "  ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetOrder(context.Background(), "os-1")
		if !errors.Is(err, ErrOrderNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.GetOrder(context.Background(), "os-1")
		if !errors.Is(err, ErrFetch) {
			t.Fatalf("expected ErrFetch, got %v", err)
		}
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	base := fixedClock()
	stored := []entities.ServiceOrder{
		{ID: "a", Status: entities.OrderStatusEmAnalise, CreatedAt: base.Add(-3 * time.Hour)},
		{ID: "b", Status: entities.OrderStatusEmReparo, CreatedAt: base.Add(-1 * time.Hour)},
		{ID: "c", Status: entities.OrderStatusConcluido, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "d", Status: entities.OrderStatusCancelado, CreatedAt: base},
	}

	cases := []struct {
		view OrderView
		want []string
	}{
		{OrderViewActive, []string{"b", "a"}},
		{OrderViewCompleted, []string{"c"}},
		{OrderViewHistory, []string{"d", "c"}},
		{OrderViewAll, []string{"d", "b", "c", "a"}},
		{"", []string{"d", "b", "c", "a"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("view %q", tc.view), func(t *testing.T) {
			uc, repo := newOrderUseCase(t)
			repo.EXPECT().List(gomock.Any()).Return(append([]entities.ServiceOrder(nil), stored...), nil)

			got, err := uc.ListOrders(context.Background(), tc.view)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d orders, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}

	t.Run("unknown view", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.ListOrders(context.Background(), "pending")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("every non permitted edge is rejected without a write", func(t *testing.T) {
		for _, from := range entities.OrderStatuses() {
			for _, to := range entities.OrderStatuses() {
				if from.CanTransitionTo(to) {
					continue
				}
				uc, repo := newOrderUseCase(t)
				repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: from}, nil)

				_, err := uc.UpdateStatus(context.Background(), staff, "os-1", to)
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
				}
			}
		}
	})

	t.Run("start repair writes conditional transition", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		at := fixedClock()
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAnalise}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusEmAnalise, entities.OrderStatusEmReparo, at).
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo, StartedAt: &at}, nil)

		got, err := uc.StartRepair(context.Background(), staff, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusEmReparo || got.StartedAt == nil {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("complete and cancel shortcuts", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusEmReparo, entities.OrderStatusConcluido, gomock.Any()).
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusConcluido}, nil)
		if _, err := uc.Complete(context.Background(), staff, "os-1"); err != nil {
			t.Fatalf("complete: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "os-2").Return(entities.ServiceOrder{ID: "os-2", Status: entities.OrderStatusEmAnalise}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "os-2", entities.OrderStatusEmAnalise, entities.OrderStatusCancelado, gomock.Any()).
			Return(entities.ServiceOrder{ID: "os-2", Status: entities.OrderStatusCancelado}, nil)
		if _, err := uc.Cancel(context.Background(), staff, "os-2"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
	})

	t.Run("concurrent change surfaces as invalid transition", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusEmReparo, entities.OrderStatusConcluido, gomock.Any()).
			Return(entities.ServiceOrder{}, nil)

		_, err := uc.Complete(context.Background(), staff, "os-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("records metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewOrderUseCase(repo, nil, metrics)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAnalise}, nil)
		metrics.EXPECT().ObserveTransition("Em análise", "Concluído", "rejected")

		_, _ = uc.Complete(context.Background(), staff, "os-1")
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.StartRepair(context.Background(), staff, "os-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), staff, "os-1", "Aguardando")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOrderUseCase_SavePhotos(t *testing.T) {
	t.Run("full bucket rejects overflow without writing", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
			ID: "os-1", Status: entities.OrderStatusEmAnalise, PhotosBefore: []string{"1", "2", "3"},
		}, nil)

		res, err := uc.SavePhotos(context.Background(), staff, "os-1", []string{"4", "5"}, nil)
		if !errors.Is(err, ErrPhotoLimit) {
			t.Fatalf("expected ErrPhotoLimit, got %v", err)
		}
		if res.RejectedBefore != 2 || res.AcceptedBefore != 0 {
			t.Fatalf("unexpected counts: %+v", res)
		}
		if len(res.Order.PhotosBefore) != 3 {
			t.Fatalf("expected 3 stored photos, got %d", len(res.Order.PhotosBefore))
		}
	})

	t.Run("partial overflow keeps accepted subset", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
			ID: "os-1", Status: entities.OrderStatusEmReparo, PhotosBefore: []string{"1", "2"},
		}, nil)
		repo.EXPECT().UpdatePhotos(gomock.Any(), "os-1", []string{"1", "2", "3"}, []string{}).
			Return(entities.ServiceOrder{ID: "os-1", PhotosBefore: []string{"1", "2", "3"}}, nil)

		res, err := uc.SavePhotos(context.Background(), staff, "os-1", []string{"3", "4"}, nil)
		if !errors.Is(err, ErrPhotoLimit) {
			t.Fatalf("expected ErrPhotoLimit, got %v", err)
		}
		if res.AcceptedBefore != 1 || res.RejectedBefore != 1 {
			t.Fatalf("unexpected counts: %+v", res)
		}
		if len(res.Order.PhotosBefore) != 3 {
			t.Fatalf("expected persisted order in result")
		}
	})

	t.Run("after photos need completed order", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo}, nil)

		_, err := uc.SavePhotos(context.Background(), staff, "os-1", nil, []string{"x"})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("after photos on completed order", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
			ID: "os-1", Status: entities.OrderStatusConcluido, PhotosBefore: []string{"b"},
		}, nil)
		repo.EXPECT().UpdatePhotos(gomock.Any(), "os-1", []string{"b"}, []string{"x", "y"}).
			Return(entities.ServiceOrder{ID: "os-1", PhotosBefore: []string{"b"}, PhotosAfter: []string{"x", "y"}}, nil)

		res, err := uc.SavePhotos(context.Background(), staff, "os-1", nil, []string{"x", "y"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AcceptedAfter != 2 || res.Rejected() != 0 {
			t.Fatalf("unexpected counts: %+v", res)
		}
	})

	t.Run("oversized item is rejected, not retryable", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAnalise}, nil)
		repo.EXPECT().UpdatePhotos(gomock.Any(), "os-1", []string{"big"}, []string{}).
			Return(entities.ServiceOrder{}, fmt.Errorf("%w: item size has exceeded the maximum allowed size", interfaces.ErrRecordRejected))

		_, err := uc.SavePhotos(context.Background(), staff, "os-1", []string{"big"}, nil)
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("expected ErrRejected, got %v", err)
		}
		if errors.Is(err, ErrPersist) {
			t.Fatalf("rejected write must not be reported as ErrPersist")
		}
	})

	t.Run("nothing to save", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.SavePhotos(context.Background(), staff, "os-1", []string{""}, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOrderUseCase_DeleteOrder(t *testing.T) {
	t.Run("technician is forbidden", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		err := uc.DeleteOrder(context.Background(), staff, "os-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("active order cannot be deleted", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmReparo}, nil)

		err := uc.DeleteOrder(context.Background(), admin, "os-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("admin deletes terminal order", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusCancelado}, nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(true, nil)

		if err := uc.DeleteOrder(context.Background(), admin, "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vanished between read and delete", func(t *testing.T) {
		uc, repo := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusConcluido}, nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(false, nil)

		err := uc.DeleteOrder(context.Background(), admin, "os-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
