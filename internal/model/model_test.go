package model_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/internal/model"
)

func TestBookLoan_State(t *testing.T) {
	t.Parallel()

	loan := model.BookLoan{
		ID:           "loan-1",
		BookID:       "book-1",
		UserID:       42,
		BorrowedDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.True(t, loan.Active())
	require.False(t, loan.Returned())

	loan.ReturnedDate = sql.NullTime{Time: loan.BorrowedDate.Add(time.Hour), Valid: true}
	require.False(t, loan.Active())
	require.True(t, loan.Returned())
}
