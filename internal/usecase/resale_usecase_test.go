package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_os/internal/domain/entities"
	mock_interfaces "assistencia_os/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newResaleUseCase(t *testing.T) (*ResaleUseCase, *mock_interfaces.MockIResaleRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIResaleRepository(ctrl)
	uc := NewResaleUseCase(repo, nil)
	uc.now = fixedClock
	return uc, repo
}

func TestResaleUseCase_CreateResale(t *testing.T) {
	t.Run("missing brand", func(t *testing.T) {
		uc := NewResaleUseCase(nil, nil)
		_, err := uc.CreateResale(context.Background(), staff, CreateResaleInput{Model: "iPhone 11"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative cost", func(t *testing.T) {
		uc := NewResaleUseCase(nil, nil)
		_, err := uc.CreateResale(context.Background(), staff, CreateResaleInput{
			Brand: "Apple", Model: "iPhone 11", DeviceCost: decimal.NewFromInt(-5),
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("starts in stock", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ResaleItem) (entities.ResaleItem, error) {
			return r, nil
		})

		got, err := uc.CreateResale(context.Background(), staff, CreateResaleInput{
			Brand:          "Apple",
			Model:          "iPhone 11",
			DeviceCost:     decimal.NewFromInt(80),
			PartsCost:      decimal.NewFromInt(20),
			EstimatedPrice: entities.Money(decimal.NewFromInt(200)),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ResaleStatusEmEstoque {
			t.Fatalf("expected %s, got %s", entities.ResaleStatusEmEstoque, got.Status)
		}
		if got.SoldPrice.Valid || got.Profit.Valid || got.SoldAt != nil {
			t.Fatalf("sale fields must be empty on create: %+v", got)
		}
	})
}

func TestResaleUseCase_MarkSold(t *testing.T) {
	inStock := entities.ResaleItem{
		ID:         "r-1",
		DeviceCost: entities.Money(decimal.RequireFromString("80.00")),
		PartsCost:  entities.Money(decimal.RequireFromString("20.00")),
		Status:     entities.ResaleStatusEmEstoque,
	}

	t.Run("stores profit over cost basis", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		at := fixedClock()
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(inStock, nil)
		repo.EXPECT().MarkSold(gomock.Any(), "r-1", gomock.Any(), gomock.Any(), at).
			DoAndReturn(func(_ context.Context, id string, sold, profit decimal.Decimal, at time.Time) (entities.ResaleItem, error) {
				if !profit.Equal(decimal.NewFromInt(80)) {
					t.Fatalf("expected profit 80, got %s", profit)
				}
				out := inStock
				out.Status = entities.ResaleStatusVendido
				out.SoldPrice = entities.Money(sold)
				out.Profit = entities.Money(profit)
				out.SoldAt = &at
				return out, nil
			})

		got, err := uc.MarkSold(context.Background(), staff, "r-1", decimal.RequireFromString("180.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ResaleStatusVendido {
			t.Fatalf("expected Vendido, got %s", got.Status)
		}
	})

	t.Run("already sold", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		sold := inStock
		sold.Status = entities.ResaleStatusVendido
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(sold, nil)

		_, err := uc.MarkSold(context.Background(), staff, "r-1", decimal.NewFromInt(100))
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("non positive price", func(t *testing.T) {
		uc := NewResaleUseCase(nil, nil)
		_, err := uc.MarkSold(context.Background(), staff, "r-1", decimal.Zero)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestResaleUseCase_CancelSale(t *testing.T) {
	t.Run("reverts to stock", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusVendido}, nil)
		repo.EXPECT().RevertSale(gomock.Any(), "r-1", fixedClock()).
			Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusEmEstoque}, nil)

		got, err := uc.CancelSale(context.Background(), staff, "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ResaleStatusEmEstoque {
			t.Fatalf("expected Em estoque, got %s", got.Status)
		}
	})

	t.Run("not sold", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusEmEstoque}, nil)

		_, err := uc.CancelSale(context.Background(), staff, "r-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{}, nil)

		_, err := uc.CancelSale(context.Background(), staff, "r-1")
		if !errors.Is(err, ErrResaleNotFound) {
			t.Fatalf("expected ErrResaleNotFound, got %v", err)
		}
	})
}

func TestResaleUseCase_ListResales(t *testing.T) {
	uc, repo := newResaleUseCase(t)
	base := fixedClock()
	repo.EXPECT().List(gomock.Any()).Return([]entities.ResaleItem{
		{ID: "a", Status: entities.ResaleStatusEmEstoque, CreatedAt: base.Add(-time.Hour)},
		{ID: "b", Status: entities.ResaleStatusVendido, CreatedAt: base},
		{ID: "c", Status: entities.ResaleStatusEmEstoque, CreatedAt: base},
	}, nil)

	got, err := uc.ListResales(context.Background(), entities.ResaleStatusEmEstoque)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestResaleUseCase_DeleteResale(t *testing.T) {
	t.Run("technician is forbidden", func(t *testing.T) {
		uc := NewResaleUseCase(nil, nil)
		err := uc.DeleteResale(context.Background(), staff, "r-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{}, nil)

		err := uc.DeleteResale(context.Background(), admin, "r-1")
		if !errors.Is(err, ErrResaleNotFound) {
			t.Fatalf("expected ErrResaleNotFound, got %v", err)
		}
	})

	t.Run("sold item must be cancelled first", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusVendido}, nil)

		err := uc.DeleteResale(context.Background(), admin, "r-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("admin deletes item in stock", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusEmEstoque}, nil)
		repo.EXPECT().Delete(gomock.Any(), "r-1").Return(true, nil)

		if err := uc.DeleteResale(context.Background(), admin, "r-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vanished between read and delete", func(t *testing.T) {
		uc, repo := newResaleUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ResaleItem{ID: "r-1", Status: entities.ResaleStatusEmEstoque}, nil)
		repo.EXPECT().Delete(gomock.Any(), "r-1").Return(false, nil)

		err := uc.DeleteResale(context.Background(), admin, "r-1")
		if !errors.Is(err, ErrResaleNotFound) {
			t.Fatalf("expected ErrResaleNotFound, got %v", err)
		}
	})
}
