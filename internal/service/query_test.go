package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	mock_repository "github.com/Astemirdum/lending-service/internal/repository/mocks"
	"github.com/Astemirdum/lending-service/internal/service"
)

func newQuery(t *testing.T) (*service.Query, *mock_repository.MockCatalogRepository, *mock_repository.MockLedgerRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	books := mock_repository.NewMockCatalogRepository(c)
	loans := mock_repository.NewMockLedgerRepository(c)
	return service.NewQuery(books, loans, zap.NewExample().Named("test")), books, loans
}

func TestQuery_Status(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name       string
		pieces     int
		active     int
		userActive int
		want       model.BorrowStatus
	}{
		{
			name: "borrowed by user", pieces: 2, active: 2, userActive: 1,
			want: model.BorrowStatus{BookID: testBookID, IsBorrowedByUser: true, ActiveLoanCount: 1, AvailableCount: 0},
		},
		{
			name: "free copies", pieces: 3, active: 1, userActive: 0,
			want: model.BorrowStatus{BookID: testBookID, IsBorrowedByUser: false, ActiveLoanCount: 0, AvailableCount: 2},
		},
		{
			name: "availability floored at zero", pieces: 2, active: 3, userActive: 2,
			want: model.BorrowStatus{BookID: testBookID, IsBorrowedByUser: true, ActiveLoanCount: 2, AvailableCount: 0},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, books, loans := newQuery(t)
			books.EXPECT().GetBook(ctx, testBookID).
				Return(model.Book{ID: testBookID, NumberOfPieces: tt.pieces}, nil)
			// count lookups run under an errgroup-derived context
			loans.EXPECT().UserActiveLoanCount(gomock.Any(), testBookID, testUserID).
				Return(tt.userActive, nil)
			loans.EXPECT().ActiveLoanCount(gomock.Any(), testBookID).
				Return(tt.active, nil)

			got, err := svc.Status(ctx, testBookID, testUserID)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_Status_NotFound(t *testing.T) {
	t.Parallel()
	svc, books, _ := newQuery(t)
	books.EXPECT().GetBook(context.Background(), testBookID).
		Return(model.Book{}, errs.ErrNotFound)

	_, err := svc.Status(context.Background(), testBookID, testUserID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestQuery_BatchStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty input yields empty map", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newQuery(t)

		got, err := svc.BatchStatus(ctx, nil, testUserID)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("unknown ids are omitted", func(t *testing.T) {
		t.Parallel()
		svc, books, loans := newQuery(t)
		ids := []string{testBookID, "missing-id"}
		books.EXPECT().GetBooks(ctx, ids).
			Return([]model.Book{{ID: testBookID, NumberOfPieces: 2}}, nil)
		loans.EXPECT().ActiveLoanCounts(gomock.Any(), []string{testBookID}).
			Return(map[string]int{testBookID: 1}, nil)
		loans.EXPECT().UserActiveLoanCounts(gomock.Any(), []string{testBookID}, testUserID).
			Return(map[string]int{testBookID: 1}, nil)

		got, err := svc.BatchStatus(ctx, ids, testUserID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotContains(t, got, "missing-id")
		require.Equal(t, model.BorrowStatus{
			BookID:           testBookID,
			IsBorrowedByUser: true,
			ActiveLoanCount:  1,
			AvailableCount:   1,
		}, got[testBookID])
	})

	t.Run("no known ids", func(t *testing.T) {
		t.Parallel()
		svc, books, _ := newQuery(t)
		books.EXPECT().GetBooks(ctx, []string{"missing-id"}).
			Return(nil, nil)

		got, err := svc.BatchStatus(ctx, []string{"missing-id"}, testUserID)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestQuery_UserActiveLoans(t *testing.T) {
	t.Parallel()
	svc, _, loans := newQuery(t)
	want := []model.UserLoan{
		{LoanID: "loan-a", BookID: testBookID, Name: "The Go Programming Language"},
		{LoanID: "loan-b", BookID: testBookID, Name: "The Go Programming Language"},
	}
	loans.EXPECT().UserActiveLoans(context.Background(), testUserID).Return(want, nil)

	got, err := svc.UserActiveLoans(context.Background(), testUserID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
