package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	SuggestNames(ctx context.Context, prefix string) ([]string, error)
	SuggestAuthors(ctx context.Context, prefix string) ([]string, error)
}

type LedgerService interface {
	Borrow(ctx context.Context, bookID string, userID int) (model.BorrowResponse, error)
	Return(ctx context.Context, bookID string, userID int) error
}

type QueryService interface {
	Status(ctx context.Context, bookID string, userID int) (model.BorrowStatus, error)
	BatchStatus(ctx context.Context, bookIDs []string, userID int) (map[string]model.BorrowStatus, error)
	UserActiveLoans(ctx context.Context, userID int) ([]model.UserLoan, error)
}

var (
	_ CatalogService = (*service.Catalog)(nil)
	_ LedgerService  = (*service.Ledger)(nil)
	_ QueryService   = (*service.Query)(nil)
)
