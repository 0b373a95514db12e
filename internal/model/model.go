package model

import (
	"database/sql"
	"time"
)

type Book struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Author         string `json:"author" db:"author"`
	IssueYear      int    `json:"issueYear" db:"issue_year"`
	ISBN           string `json:"isbn" db:"isbn"`
	NumberOfPieces int    `json:"numberOfPieces" db:"number_of_pieces"`
}

// BookLoan state is derived from returned_date: unset means the loan
// is active, set means it is closed for good.
type BookLoan struct {
	ID           string       `json:"loanId" db:"id"`
	BookID       string       `json:"bookId" db:"book_id"`
	UserID       int          `json:"userId" db:"user_id"`
	BorrowedDate time.Time    `json:"borrowedDate" db:"borrowed_date"`
	ReturnedDate sql.NullTime `json:"-" db:"returned_date"`
}

func (l BookLoan) Active() bool {
	return !l.ReturnedDate.Valid
}

func (l BookLoan) Returned() bool {
	return l.ReturnedDate.Valid
}

type CreateBookRequest struct {
	Name           string `json:"name" validate:"required,max=300"`
	Author         string `json:"author" validate:"required,max=200"`
	IssueYear      int    `json:"issueYear" validate:"required,min=1000"`
	ISBN           string `json:"isbn" validate:"required,isbn13"`
	NumberOfPieces int    `json:"numberOfPieces" validate:"min=0"`
}

type BookFilter struct {
	Name   string
	Author string
	ISBN   string
}

type Paging struct {
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type BorrowResponse struct {
	LoanID       string    `json:"loanId"`
	BookID       string    `json:"bookId"`
	UserID       int       `json:"userId"`
	BorrowedDate time.Time `json:"borrowedDate"`
	Message      string    `json:"message"`
}

type BorrowStatus struct {
	BookID           string `json:"bookId"`
	IsBorrowedByUser bool   `json:"isBorrowedByUser"`
	ActiveLoanCount  int    `json:"activeLoanCount"`
	AvailableCount   int    `json:"availableCount"`
}

// UserLoan is an active loan joined with its book row.
type UserLoan struct {
	LoanID       string    `json:"loanId" db:"loan_id"`
	BookID       string    `json:"bookId" db:"book_id"`
	BorrowedDate time.Time `json:"borrowedDate" db:"borrowed_date"`
	Name         string    `json:"name" db:"name"`
	Author       string    `json:"author" db:"author"`
	ISBN         string    `json:"isbn" db:"isbn"`
	IssueYear    int       `json:"issueYear" db:"issue_year"`
}

type EventType string

const (
	EventBorrowed EventType = "book.borrowed"
	EventReturned EventType = "book.returned"
)

type LoanEvent struct {
	Type   EventType `json:"type"`
	LoanID string    `json:"loanId"`
	BookID string    `json:"bookId"`
	UserID int       `json:"userId"`
	At     time.Time `json:"at"`
}
