package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceTransaction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(FinanceTransaction{
		ID:              3,
		UserID:          7,
		Amount:          12.5,
		Type:            TransactionExpense,
		Category:        "food",
		TransactionDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"amount":12.5,"type":"EXPENSE","category":"food","description":"","transaction_date":"2025-05-01"}`, string(b))
}

func TestUser_HidesPasswordHash(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Email: "a@b.c", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
}

func TestCalendarEvent_HidesOwner(t *testing.T) {
	b, err := json.Marshal(CalendarEvent{ID: 1, UserID: 99, Title: "x"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "user_id")
	assert.NotContains(t, string(b), "updated_at")
}
