package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}
