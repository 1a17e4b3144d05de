package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_prime/internal/domain/entities"
)

// ExpenseDraft carries the fields a new ledger entry is created from.
type ExpenseDraft struct {
	Description string
	Amount      float64
	Date        time.Time
	Category    string
}

// ExpensePatch is a partial update; nil fields are left untouched.
type ExpensePatch struct {
	Description *string
	Amount      *float64
	Date        *time.Time
	Category    *string
}

func (d ExpenseDraft) validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return ErrMissingDescription
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (s *Store) AddExpense(ctx context.Context, draft ExpenseDraft) (entities.Expense, error) {
	if err := draft.validate(); err != nil {
		s.notifyFailure("Dados da despesa inválidos: " + err.Error())
		return entities.Expense{}, err
	}

	date := draft.Date
	if date.IsZero() {
		date = s.now()
	}

	expense := entities.Expense{
		ID:          s.newID(),
		Description: strings.TrimSpace(draft.Description),
		Amount:      draft.Amount,
		Date:        date,
		Category:    strings.TrimSpace(draft.Category),
	}

	if err := s.repos.Expenses.Create(ctx, expense); err != nil {
		s.notifyFailure("Erro ao adicionar despesa: " + err.Error())
		return entities.Expense{}, err
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, expense)
	s.mu.Unlock()

	s.notifySuccess("Despesa adicionada com sucesso!")
	return expense, nil
}

func (s *Store) UpdateExpense(ctx context.Context, id string, patch ExpensePatch) (entities.Expense, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de despesa inválido")
		return entities.Expense{}, err
	}

	expense, ok := s.findExpense(id)
	if !ok {
		s.notifyFailure("Despesa não encontrada")
		return entities.Expense{}, ErrExpenseNotFound
	}

	if patch.Description != nil {
		expense.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			s.notifyFailure("Valor da despesa inválido")
			return entities.Expense{}, ErrInvalidAmount
		}
		expense.Amount = *patch.Amount
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.Category != nil {
		expense.Category = strings.TrimSpace(*patch.Category)
	}

	if err := s.repos.Expenses.Update(ctx, expense); err != nil {
		s.notifyFailure("Erro ao atualizar despesa: " + err.Error())
		return entities.Expense{}, err
	}

	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == expense.ID {
			s.expenses[i] = expense
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Despesa atualizada!")
	return expense, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de despesa inválido")
		return err
	}
	if _, ok := s.findExpense(id); !ok {
		s.notifyFailure("Despesa não encontrada")
		return ErrExpenseNotFound
	}

	if err := s.repos.Expenses.Delete(ctx, id); err != nil {
		s.notifyFailure("Erro ao excluir despesa: " + err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Despesa excluída!")
	return nil
}

func (s *Store) findExpense(id string) (entities.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return entities.Expense{}, false
}
