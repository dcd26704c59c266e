package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
)

var financeSchema = Schema[entity.FinanceTransaction]{
	Table:    "finance_transactions",
	Columns:  []string{"amount", "type", "category", "description", "transaction_date"},
	ReadOnly: []string{"updated_at"},
	OrderBy:  "transaction_date DESC, id DESC",
	Touch:    true,
	Values: func(t *entity.FinanceTransaction) []any {
		return []any{t.Amount, t.Type, t.Category, t.Description, t.TransactionDate}
	},
	Scan: func(row pgx.Row) (entity.FinanceTransaction, error) {
		var t entity.FinanceTransaction
		err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category, &t.Description,
			&t.TransactionDate, &t.UpdatedAt)
		return t, err
	},
}

// Anything that is not INCOME counts against the balance.
const summarySQL = `
	SELECT COUNT(*),
	       COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0),
	       COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0),
	       COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE -amount END), 0)
	FROM finance_transactions
	WHERE user_id = $1
`

type FinanceRepository struct {
	*ScopedStore[entity.FinanceTransaction]
	pool *Pool
}

func NewFinanceRepository(pool *Pool) *FinanceRepository {
	return &FinanceRepository{ScopedStore: NewScopedStore(pool, financeSchema), pool: pool}
}

// Summary aggregates owner's transactions in one statement.
func (r *FinanceRepository) Summary(ctx context.Context, owner int64) (entity.FinanceSummary, error) {
	var s entity.FinanceSummary
	err := r.pool.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, summarySQL, owner).Scan(&s.TotalTransactions, &s.Income, &s.Expense, &s.Balance)
	})
	if err != nil {
		return entity.FinanceSummary{}, translate(financeSchema.Table, err)
	}
	return s, nil
}

var _ repository.FinanceRepository = (*FinanceRepository)(nil)
