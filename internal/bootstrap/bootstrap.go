package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/isbn"
)

type seedBook struct {
	name   string
	author string
	year   int
	body   string // 12-digit isbn body, check digit is computed
	pieces int
}

var seedBooks = []seedBook{
	{"The Go Programming Language", "Alan A. A. Donovan", 2015, "978013419044", 3},
	{"Clean Architecture", "Robert C. Martin", 2017, "978013449416", 2},
	{"Designing Data-Intensive Applications", "Martin Kleppmann", 2017, "978144937332", 2},
	{"The Pragmatic Programmer", "David Thomas", 2019, "978013595705", 1},
	{"Site Reliability Engineering", "Betsy Beyer", 2016, "978149192912", 2},
}

// Seed loads the fixture catalog once. A non-empty catalog makes it a no-op,
// so repeated restarts do not duplicate anything.
func Seed(ctx context.Context, repo repository.CatalogRepository, log *zap.Logger) error {
	count, err := repo.CountBooks(ctx)
	if err != nil {
		return errors.Wrap(err, "count books")
	}
	if count > 0 {
		return nil
	}

	for _, b := range seedBooks {
		bookISBN, err := isbn.Generate(b.body)
		if err != nil {
			return errors.Wrapf(err, "seed isbn %q", b.body)
		}
		if _, err := repo.CreateBook(ctx, model.CreateBookRequest{
			Name:           b.name,
			Author:         b.author,
			IssueYear:      b.year,
			ISBN:           bookISBN,
			NumberOfPieces: b.pieces,
		}); err != nil && !errors.Is(err, errs.ErrBookExists) {
			return errors.Wrapf(err, "seed book %q", b.name)
		}
	}
	log.Info("catalog seeded", zap.Int("books", len(seedBooks)))
	return nil
}
