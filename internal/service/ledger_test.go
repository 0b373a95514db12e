package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	mock_repository "github.com/Astemirdum/lending-service/internal/repository/mocks"
	"github.com/Astemirdum/lending-service/internal/service"
)

const (
	testBookID = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	testUserID = 42
)

func newLedger(t *testing.T) (*service.Ledger, *mock_repository.MockCatalogRepository, *mock_repository.MockLedgerRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	books := mock_repository.NewMockCatalogRepository(c)
	loans := mock_repository.NewMockLedgerRepository(c)
	return service.NewLedger(books, loans, nil, zap.NewExample().Named("test")), books, loans
}

func TestLedger_Borrow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	borrowed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 2}, nil)
		loans.EXPECT().ActiveLoanCount(ctx, testBookID).Return(1, nil)
		loans.EXPECT().CreateLoan(ctx, testBookID, testUserID).
			Return(model.BookLoan{
				ID:           "loan-1",
				BookID:       testBookID,
				UserID:       testUserID,
				BorrowedDate: borrowed,
			}, nil)

		resp, err := svc.Borrow(ctx, testBookID, testUserID)
		require.NoError(t, err)
		require.Equal(t, "loan-1", resp.LoanID)
		require.Equal(t, testBookID, resp.BookID)
		require.Equal(t, testUserID, resp.UserID)
		require.Equal(t, borrowed, resp.BorrowedDate)
		require.NotEmpty(t, resp.Message)
	})

	t.Run("book not found", func(t *testing.T) {
		t.Parallel()
		svc, books, _ := newLedger(t)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.Borrow(ctx, testBookID, testUserID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("no capacity creates no loan", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 2}, nil)
		loans.EXPECT().ActiveLoanCount(ctx, testBookID).Return(2, nil)
		// no CreateLoan expectation: a rejected borrow must not write

		_, err := svc.Borrow(ctx, testBookID, testUserID)
		var noCap *errs.NoCapacityError
		require.ErrorAs(t, err, &noCap)
		require.Equal(t, 2, noCap.Active)
		require.Equal(t, 2, noCap.Total)
	})

	t.Run("zero pieces", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 0}, nil)
		loans.EXPECT().ActiveLoanCount(ctx, testBookID).Return(0, nil)

		_, err := svc.Borrow(ctx, testBookID, testUserID)
		var noCap *errs.NoCapacityError
		require.ErrorAs(t, err, &noCap)
	})

	t.Run("count fails", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 2}, nil)
		loans.EXPECT().ActiveLoanCount(ctx, testBookID).
			Return(0, errors.New("db internal"))

		_, err := svc.Borrow(ctx, testBookID, testUserID)
		require.EqualError(t, err, "db internal")
	})
}

func TestLedger_Return(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("closes oldest loan", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		loans.EXPECT().OldestActiveLoan(ctx, testBookID, testUserID).
			Return(model.BookLoan{ID: "loan-oldest", BookID: testBookID, UserID: testUserID}, nil)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 2}, nil)
		loans.EXPECT().CloseLoan(ctx, "loan-oldest").Return(nil)

		require.NoError(t, svc.Return(ctx, testBookID, testUserID))
	})

	t.Run("no active loan", func(t *testing.T) {
		t.Parallel()
		svc, _, loans := newLedger(t)
		loans.EXPECT().OldestActiveLoan(ctx, testBookID, testUserID).
			Return(model.BookLoan{}, errs.ErrNoActiveLoan)

		require.ErrorIs(t, svc.Return(ctx, testBookID, testUserID), errs.ErrNoActiveLoan)
	})

	t.Run("book row gone", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newLedger(t)
		loans.EXPECT().OldestActiveLoan(ctx, testBookID, testUserID).
			Return(model.BookLoan{ID: "loan-1", BookID: testBookID}, nil)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{}, errs.ErrNotFound)
		// no CloseLoan expectation: referential corruption aborts the return

		require.ErrorIs(t, svc.Return(ctx, testBookID, testUserID), errs.ErrNotFound)
	})
}

func TestLedger_Return_FIFO(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, books, loans := newLedger(t)

	// three active loans, returned one by one oldest-first, then nothing left
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ids := []string{"loan-a", "loan-b", "loan-c"}
	for i, id := range ids {
		loans.EXPECT().OldestActiveLoan(ctx, testBookID, testUserID).
			Return(model.BookLoan{
				ID:           id,
				BookID:       testBookID,
				UserID:       testUserID,
				BorrowedDate: base.Add(time.Duration(i) * time.Hour),
			}, nil)
		books.EXPECT().GetBook(ctx, testBookID).
			Return(model.Book{ID: testBookID, NumberOfPieces: 3}, nil)
		loans.EXPECT().CloseLoan(ctx, id).Return(nil)
	}
	loans.EXPECT().OldestActiveLoan(ctx, testBookID, testUserID).
		Return(model.BookLoan{}, errs.ErrNoActiveLoan)

	for range ids {
		require.NoError(t, svc.Return(ctx, testBookID, testUserID))
	}
	require.ErrorIs(t, svc.Return(ctx, testBookID, testUserID), errs.ErrNoActiveLoan)
}
