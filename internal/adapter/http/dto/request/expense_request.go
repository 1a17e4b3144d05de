package request

import (
	"errors"
	"time"

	"oficina_prime/internal/usecase"
)

var ErrInvalidExpenseDate = errors.New("invalid expense date")

const expenseDateLayout = "2006-01-02"

type ExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// ToDraft parses the entry date; an absent date defaults to today.
func (r ExpenseRequest) ToDraft(now time.Time) (usecase.ExpenseDraft, error) {
	date := now
	if r.Date != "" {
		parsed, err := time.Parse(expenseDateLayout, r.Date)
		if err != nil {
			return usecase.ExpenseDraft{}, ErrInvalidExpenseDate
		}
		date = parsed
	}
	return usecase.ExpenseDraft{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        date,
		Category:    r.Category,
	}, nil
}

type ExpenseUpdateRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
}

func (r ExpenseUpdateRequest) ToPatch() (usecase.ExpensePatch, error) {
	patch := usecase.ExpensePatch{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
	}
	if r.Date != nil {
		parsed, err := time.Parse(expenseDateLayout, *r.Date)
		if err != nil {
			return usecase.ExpensePatch{}, ErrInvalidExpenseDate
		}
		patch.Date = &parsed
	}
	return patch, nil
}
