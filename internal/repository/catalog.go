package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

const suggestLimit = 20

type catalogRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCatalogRepository(db *sqlx.DB, log *zap.Logger) (*catalogRepository, error) {
	return &catalogRepository{
		db:  db,
		log: log.Named("catalog-repo"),
	}, nil
}

var bookColumns = []string{"id", "name", "author", "issue_year", "isbn", "number_of_pieces"}

func (r *catalogRepository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(uuid.NewString(), req.Name, req.Author, req.IssueYear, req.ISBN, req.NumberOfPieces).
		Suffix("returning id, name, author, issue_year, isbn, number_of_pieces").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Book{}, errs.ErrBookExists
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *catalogRepository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *catalogRepository) GetBooks(ctx context.Context, bookIDs []string) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *catalogRepository) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	where := sq.And{wellFormed()}
	if filter.Name != "" {
		where = append(where, sq.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.Author != "" {
		where = append(where, sq.ILike{"author": "%" + filter.Author + "%"})
	}
	if filter.ISBN != "" {
		where = append(where, sq.ILike{"isbn": "%" + filter.ISBN + "%"})
	}

	query, args, err := qb.Select("count(*)").
		From(booksTableName).
		Where(where).
		ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	query, args, err = qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		OrderBy("name asc", "author asc").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			TotalCount: total,
			PageNumber: page,
			PageSize:   size,
		},
		Items: books,
	}, nil
}

func (r *catalogRepository) SuggestNames(ctx context.Context, prefix string) ([]string, error) {
	return r.suggest(ctx, "name", prefix)
}

func (r *catalogRepository) SuggestAuthors(ctx context.Context, prefix string) ([]string, error) {
	return r.suggest(ctx, "author", prefix)
}

func (r *catalogRepository) suggest(ctx context.Context, column, prefix string) ([]string, error) {
	query, args, err := qb.Select(column).
		Distinct().
		From(booksTableName).
		Where(wellFormed()).
		Where(sq.ILike{column: prefix + "%"}).
		OrderBy(column + " asc").
		Limit(suggestLimit).
		ToSql()
	if err != nil {
		return nil, err
	}

	var values []string
	if err := r.db.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *catalogRepository) CountBooks(ctx context.Context) (int, error) {
	q := `select count(*) from books`
	var count int
	if err := r.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
