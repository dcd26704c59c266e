package application

import (
	"context"
	"strings"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
	"github.com/oksasatya/records-api/pkg/validation"
)

// TransactionInput is the body of create and update transaction calls.
// Amount is a pointer so that an absent amount is told apart from zero.
// Its bounds keep it inside the NUMERIC(14,2) column.
type TransactionInput struct {
	Amount          *float64 `json:"amount" validate:"required,gt=-1e12,lt=1e12"`
	Type            string   `json:"type" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Description     string   `json:"description"`
	TransactionDate string   `json:"transaction_date" validate:"required"`
}

var transactionMessages = validation.Messages{
	"amount":           "Missing amount",
	"amount.gt":        "Amount out of range",
	"amount.lt":        "Amount out of range",
	"type":             "Missing type",
	"category":         "Missing category",
	"transaction_date": "Missing transaction_date",
}

func (in *TransactionInput) Normalize() {
	in.Type = strings.TrimSpace(in.Type)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.TransactionDate = strings.TrimSpace(in.TransactionDate)
}

func (in *TransactionInput) Build() (*entity.FinanceTransaction, error) {
	if err := validation.Struct(in, transactionMessages).Err(); err != nil {
		return nil, err
	}
	day, err := validation.ParseDate(in.TransactionDate)
	if err != nil {
		return nil, validation.Field("transaction_date", "Invalid transaction_date (use YYYY-MM-DD)")
	}
	return &entity.FinanceTransaction{
		Amount:          *in.Amount,
		Type:            in.Type,
		Category:        in.Category,
		Description:     in.Description,
		TransactionDate: day,
	}, nil
}

type FinanceService struct {
	Resource[entity.FinanceTransaction, *TransactionInput]
	repo repository.FinanceRepository
}

func NewFinanceService(repo repository.FinanceRepository) *FinanceService {
	return &FinanceService{
		Resource: NewResource[entity.FinanceTransaction, *TransactionInput](repo),
		repo:     repo,
	}
}

// Summary aggregates every transaction of owner.
func (s *FinanceService) Summary(ctx context.Context, owner int64) (entity.FinanceSummary, error) {
	return s.repo.Summary(ctx, owner)
}
