package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
)

// Query composes catalog and ledger reads into client-facing shapes.
// No business rule lives here beyond shaping.
type Query struct {
	log   *zap.Logger
	books repository.CatalogRepository
	loans repository.LedgerRepository
}

func NewQuery(books repository.CatalogRepository, loans repository.LedgerRepository, log *zap.Logger) *Query {
	return &Query{
		log:   log,
		books: books,
		loans: loans,
	}
}

func (s *Query) Status(ctx context.Context, bookID string, userID int) (model.BorrowStatus, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowStatus{}, err
	}

	var userActive, active int
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		userActive, err = s.loans.UserActiveLoanCount(ctx, bookID, userID)
		return err
	})
	gg.Go(func() error {
		var err error
		active, err = s.loans.ActiveLoanCount(ctx, bookID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BorrowStatus{}, err
	}

	return model.BorrowStatus{
		BookID:           book.ID,
		IsBorrowedByUser: userActive > 0,
		ActiveLoanCount:  userActive,
		AvailableCount:   availableCount(book.NumberOfPieces, active),
	}, nil
}

// BatchStatus drops unknown book ids from the result instead of
// erroring; callers treat the map as "what the catalog knows about".
func (s *Query) BatchStatus(ctx context.Context, bookIDs []string, userID int) (map[string]model.BorrowStatus, error) {
	statuses := make(map[string]model.BorrowStatus, len(bookIDs))
	if len(bookIDs) == 0 {
		return statuses, nil
	}

	books, err := s.books.GetBooks(ctx, bookIDs)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return statuses, nil
	}

	found := make([]string, 0, len(books))
	for _, book := range books {
		found = append(found, book.ID)
	}

	var activeCounts, userCounts map[string]int
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		activeCounts, err = s.loans.ActiveLoanCounts(ctx, found)
		return err
	})
	gg.Go(func() error {
		var err error
		userCounts, err = s.loans.UserActiveLoanCounts(ctx, found, userID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	for _, book := range books {
		statuses[book.ID] = model.BorrowStatus{
			BookID:           book.ID,
			IsBorrowedByUser: userCounts[book.ID] > 0,
			ActiveLoanCount:  userCounts[book.ID],
			AvailableCount:   availableCount(book.NumberOfPieces, activeCounts[book.ID]),
		}
	}
	return statuses, nil
}

func (s *Query) UserActiveLoans(ctx context.Context, userID int) ([]model.UserLoan, error) {
	return s.loans.UserActiveLoans(ctx, userID)
}

func availableCount(pieces, active int) int {
	if active >= pieces {
		return 0
	}
	return pieces - active
}
