package entity

import (
	"encoding/json"
	"time"
)

// Transaction types that the summary aggregates specially. Other values are
// stored as given.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

type FinanceTransaction struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	Amount          float64   `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transaction_date"`
	UpdatedAt       time.Time `json:"-"`
}

// DateLayout is the wire format of TransactionDate.
const DateLayout = "2006-01-02"

// MarshalJSON renders TransactionDate as a calendar date.
func (t FinanceTransaction) MarshalJSON() ([]byte, error) {
	type plain FinanceTransaction
	return json.Marshal(struct {
		plain
		TransactionDate string `json:"transaction_date"`
	}{plain(t), t.TransactionDate.Format(DateLayout)})
}

// FinanceSummary is the per-user aggregate over all of their transactions.
type FinanceSummary struct {
	TotalTransactions int64   `json:"total_transactions"`
	Income            float64 `json:"income"`
	Expense           float64 `json:"expense"`
	Balance           float64 `json:"balance"`
}
