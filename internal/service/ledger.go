package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

// Publisher feeds the stats pipeline; delivery is best-effort.
type Publisher interface {
	Publish(topic string, v any) error
}

type Ledger struct {
	log    *zap.Logger
	books  repository.CatalogRepository
	loans  repository.LedgerRepository
	events Publisher
	cb     circuit_breaker.CircuitBreaker
}

func NewLedger(books repository.CatalogRepository, loans repository.LedgerRepository, events Publisher, log *zap.Logger) *Ledger {
	return &Ledger{
		log:    log,
		books:  books,
		loans:  loans,
		events: events,
		cb:     circuit_breaker.New(10, 5*time.Second, 0.5, 3),
	}
}

func (s *Ledger) Borrow(ctx context.Context, bookID string, userID int) (model.BorrowResponse, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, err
	}

	active, err := s.loans.ActiveLoanCount(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, err
	}
	if book.NumberOfPieces-active <= 0 {
		return model.BorrowResponse{}, &errs.NoCapacityError{Active: active, Total: book.NumberOfPieces}
	}

	// NOTE: the count above and the insert below are not atomic; two
	// concurrent borrows of the last copy can both pass the check.
	// Source-system behavior, kept on purpose - see DESIGN.md.
	loan, err := s.loans.CreateLoan(ctx, bookID, userID)
	if err != nil {
		return model.BorrowResponse{}, err
	}

	s.publish(model.LoanEvent{
		Type:   model.EventBorrowed,
		LoanID: loan.ID,
		BookID: loan.BookID,
		UserID: loan.UserID,
		At:     loan.BorrowedDate,
	})

	return model.BorrowResponse{
		LoanID:       loan.ID,
		BookID:       loan.BookID,
		UserID:       loan.UserID,
		BorrowedDate: loan.BorrowedDate,
		Message:      "book borrowed",
	}, nil
}

// Return closes the caller's oldest active loan for the book (FIFO).
func (s *Ledger) Return(ctx context.Context, bookID string, userID int) error {
	loan, err := s.loans.OldestActiveLoan(ctx, bookID, userID)
	if err != nil {
		return err
	}

	// a loan without its book means referential corruption, not a user error
	if _, err := s.books.GetBook(ctx, bookID); err != nil {
		return err
	}

	if err := s.loans.CloseLoan(ctx, loan.ID); err != nil {
		return err
	}

	s.publish(model.LoanEvent{
		Type:   model.EventReturned,
		LoanID: loan.ID,
		BookID: loan.BookID,
		UserID: loan.UserID,
		At:     time.Now().UTC(),
	})
	return nil
}

func (s *Ledger) publish(event model.LoanEvent) {
	if s.events == nil {
		return
	}
	if err := s.cb.Call(func() error {
		return s.events.Publish(kafka.LoanEventsTopic, event)
	}); err != nil {
		s.log.Warn("publish loan event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
