package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
)

const (
	minPageSize = 1
	maxPageSize = 100
)

type Catalog struct {
	log  *zap.Logger
	repo repository.CatalogRepository
}

func NewCatalog(repo repository.CatalogRepository, log *zap.Logger) *Catalog {
	return &Catalog{
		log:  log,
		repo: repo,
	}
}

// AddBook trusts the transport-level request validation; the only rule
// enforced here is (name, author, isbn) uniqueness.
func (s *Catalog) AddBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Catalog) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	if page < 1 {
		page = 1
	}
	if size < minPageSize {
		size = minPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return s.repo.ListBooks(ctx, filter, page, size)
}

// SuggestNames returns [] for a blank prefix without touching the
// store; that is the contract, not an error.
func (s *Catalog) SuggestNames(ctx context.Context, prefix string) ([]string, error) {
	if strings.TrimSpace(prefix) == "" {
		return []string{}, nil
	}
	return s.repo.SuggestNames(ctx, prefix)
}

func (s *Catalog) SuggestAuthors(ctx context.Context, prefix string) ([]string, error) {
	if strings.TrimSpace(prefix) == "" {
		return []string{}, nil
	}
	return s.repo.SuggestAuthors(ctx, prefix)
}
