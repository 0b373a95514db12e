package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/lending-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type CatalogRepository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	GetBooks(ctx context.Context, bookIDs []string) ([]model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	SuggestNames(ctx context.Context, prefix string) ([]string, error)
	SuggestAuthors(ctx context.Context, prefix string) ([]string, error)
	CountBooks(ctx context.Context) (int, error)
}

type LedgerRepository interface {
	CreateLoan(ctx context.Context, bookID string, userID int) (model.BookLoan, error)
	CloseLoan(ctx context.Context, loanID string) error
	OldestActiveLoan(ctx context.Context, bookID string, userID int) (model.BookLoan, error)
	ActiveLoanCount(ctx context.Context, bookID string) (int, error)
	UserActiveLoanCount(ctx context.Context, bookID string, userID int) (int, error)
	ActiveLoanCounts(ctx context.Context, bookIDs []string) (map[string]int, error)
	UserActiveLoanCounts(ctx context.Context, bookIDs []string, userID int) (map[string]int, error)
	UserActiveLoans(ctx context.Context, userID int) ([]model.UserLoan, error)
}

const (
	booksTableName     = `books`
	bookLoansTableName = `book_loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wellFormed guards every catalog read against malformed legacy rows.
func wellFormed() sq.And {
	return sq.And{
		sq.NotEq{"id": ""},
		sq.NotEq{"name": ""},
		sq.NotEq{"author": ""},
		sq.NotEq{"isbn": ""},
	}
}
