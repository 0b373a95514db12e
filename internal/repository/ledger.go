package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

type ledgerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewLedgerRepository(db *sqlx.DB, log *zap.Logger) (*ledgerRepository, error) {
	return &ledgerRepository{
		db:  db,
		log: log.Named("ledger-repo"),
	}, nil
}

var loanColumns = []string{"id", "book_id", "user_id", "borrowed_date", "returned_date"}

func (r *ledgerRepository) CreateLoan(ctx context.Context, bookID string, userID int) (model.BookLoan, error) {
	query, args, err := qb.Insert(bookLoansTableName).
		Columns("id", "book_id", "user_id", "borrowed_date").
		Values(uuid.NewString(), bookID, userID, time.Now().UTC()).
		Suffix("returning id, book_id, user_id, borrowed_date, returned_date").
		ToSql()
	if err != nil {
		return model.BookLoan{}, err
	}

	var loan model.BookLoan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return model.BookLoan{}, err
	}
	return loan, nil
}

// CloseLoan sets returned_date once; a loan already returned is not
// re-closable, the guard makes the transition one-way.
func (r *ledgerRepository) CloseLoan(ctx context.Context, loanID string) error {
	q := `
update book_loans
	set returned_date = $2
where id = $1 and returned_date is null`

	res, err := r.db.ExecContext(ctx, q, loanID, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNoActiveLoan
	}
	return nil
}

func (r *ledgerRepository) OldestActiveLoan(ctx context.Context, bookID string, userID int) (model.BookLoan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(bookLoansTableName).
		Where(sq.Eq{"book_id": bookID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"returned_date": nil}).
		OrderBy("borrowed_date asc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookLoan{}, err
	}

	var loan model.BookLoan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookLoan{}, errs.ErrNoActiveLoan
		}
		return model.BookLoan{}, err
	}
	return loan, nil
}

func (r *ledgerRepository) ActiveLoanCount(ctx context.Context, bookID string) (int, error) {
	q := `
	select count(*) from book_loans
	where book_id = $1 and returned_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ledgerRepository) UserActiveLoanCount(ctx context.Context, bookID string, userID int) (int, error) {
	q := `
	select count(*) from book_loans
	where book_id = $1 and user_id = $2 and returned_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, bookID, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type loanCount struct {
	BookID string `db:"book_id"`
	Count  int    `db:"cnt"`
}

func (r *ledgerRepository) ActiveLoanCounts(ctx context.Context, bookIDs []string) (map[string]int, error) {
	return r.groupedCounts(ctx, sq.And{sq.Eq{"book_id": bookIDs}, sq.Eq{"returned_date": nil}})
}

func (r *ledgerRepository) UserActiveLoanCounts(ctx context.Context, bookIDs []string, userID int) (map[string]int, error) {
	return r.groupedCounts(ctx, sq.And{
		sq.Eq{"book_id": bookIDs},
		sq.Eq{"user_id": userID},
		sq.Eq{"returned_date": nil},
	})
}

func (r *ledgerRepository) groupedCounts(ctx context.Context, where sq.And) (map[string]int, error) {
	query, args, err := qb.Select("book_id", "count(*) as cnt").
		From(bookLoansTableName).
		Where(where).
		GroupBy("book_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []loanCount
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.BookID] = row.Count
	}
	return counts, nil
}

func (r *ledgerRepository) UserActiveLoans(ctx context.Context, userID int) ([]model.UserLoan, error) {
	query, args, err := qb.Select("l.id as loan_id", "l.book_id", "l.borrowed_date",
		"b.name", "b.author", "b.isbn", "b.issue_year").
		From(bookLoansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Where(sq.Eq{"l.user_id": userID}).
		Where(sq.Eq{"l.returned_date": nil}).
		OrderBy("l.borrowed_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("UserActiveLoans", zap.String("query", query), zap.Any("args", args))

	var loans []model.UserLoan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}
