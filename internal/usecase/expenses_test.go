package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_prime/internal/domain/entities"
)

func TestStore_AddExpense(t *testing.T) {
	t.Run("defaults date to now", func(t *testing.T) {
		st, m := newTestStore(t)
		m.expenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		expense, err := st.AddExpense(context.Background(), ExpenseDraft{
			Description: "Conta de energia",
			Amount:      380,
			Category:    "Utilidades",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !expense.Date.Equal(testNow) {
			t.Fatalf("expected date defaulted to now, got %v", expense.Date)
		}
		if len(st.Expenses()) != 1 {
			t.Fatalf("expected expense in snapshot")
		}
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		st, m := newTestStore(t)
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.AddExpense(context.Background(), ExpenseDraft{Description: "x", Amount: 0})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestStore_UpdateExpense(t *testing.T) {
	existing := entities.Expense{
		ID:          "5e6f7a8b-0000-4000-8000-000000000001",
		Description: "Ferramentas",
		Amount:      450,
		Date:        testNow.AddDate(0, 0, -3),
		Category:    "Equipamentos",
	}

	st, m := newTestStore(t)
	st.expenses = []entities.Expense{existing}

	amount := 500.0
	m.expenses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Success(gomock.Any())

	updated, err := st.UpdateExpense(context.Background(), existing.ID, ExpensePatch{Amount: &amount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Amount != 500 || updated.Description != "Ferramentas" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}
}

func TestStore_DeleteExpense(t *testing.T) {
	t.Run("removed from snapshot", func(t *testing.T) {
		st, m := newTestStore(t)
		st.expenses = []entities.Expense{{ID: "5e6f7a8b-0000-4000-8000-000000000002"}}

		m.expenses.EXPECT().Delete(gomock.Any(), "5e6f7a8b-0000-4000-8000-000000000002").Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		if err := st.DeleteExpense(context.Background(), "5e6f7a8b-0000-4000-8000-000000000002"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.Expenses()) != 0 {
			t.Fatalf("expected empty expenses snapshot")
		}
	})

	t.Run("store failure keeps snapshot", func(t *testing.T) {
		st, m := newTestStore(t)
		st.expenses = []entities.Expense{{ID: "5e6f7a8b-0000-4000-8000-000000000003"}}

		m.expenses.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))
		m.notifier.EXPECT().Failure(gomock.Any())

		if err := st.DeleteExpense(context.Background(), "5e6f7a8b-0000-4000-8000-000000000003"); err == nil {
			t.Fatalf("expected error")
		}
		if len(st.Expenses()) != 1 {
			t.Fatalf("record must stay in snapshot on failure")
		}
	})
}
