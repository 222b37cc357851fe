package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookView struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	About           string    `json:"about"`
	Image           string    `json:"image"`
	TotalCopies     int32     `json:"total_copies"`
	AvailableCopies int32     `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookListItem struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Image           string    `json:"image"`
	AvailableCopies int32     `json:"available_copies"`
}

// UserView deliberately omits the profile photo; listings never carry it.
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"is_blocked"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RecordView is a ledger entry joined with a book summary for display.
type RecordView struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	BookID           uuid.UUID  `json:"book_id"`
	BookCode         string     `json:"book_code"`
	BookTitle        string     `json:"book_title"`
	BookAuthor       string     `json:"book_author"`
	BookImage        string     `json:"book_image"`
	BorrowDate       time.Time  `json:"borrow_date"`
	DueDate          time.Time  `json:"due_date"`
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// OverdueRecordView adds the borrower summary for administrative review.
type OverdueRecordView struct {
	RecordView
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	UserPhone   string `json:"user_phone"`
	UserBlocked bool   `json:"user_blocked"`
}

// Borrow status projection values, evaluated in this order.
const (
	BorrowStatusUserBlocked    = "userBlocked"
	BorrowStatusBorrowedByUser = "borrowedByUser"
	BorrowStatusUnavailable    = "unavailable"
	BorrowStatusLimitReached   = "limitReached"
	BorrowStatusCanBorrow      = "canBorrow"
)

// BorrowStatusView is advisory only: the lending engine re-validates all
// conditions at mutation time, because state can change between query
// and action.
type BorrowStatusView struct {
	Status         string     `json:"status"`
	ActiveRecordID *uuid.UUID `json:"record_id"`
	BorrowCount    int        `json:"borrow_count"`
}
