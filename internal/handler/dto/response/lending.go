package response

import (
	"time"

	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RecordResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	BookID           uuid.UUID  `json:"bookId"`
	BookCode         string     `json:"bookCode"`
	BookTitle        string     `json:"bookTitle"`
	BookAuthor       string     `json:"bookAuthor"`
	BookImage        string     `json:"bookImage"`
	BorrowDate       time.Time  `json:"borrowDate"`
	DueDate          time.Time  `json:"dueDate"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type OverdueRecordResponse struct {
	RecordResponse
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	UserPhone   string `json:"userPhone"`
	UserBlocked bool   `json:"userBlocked"`
}

type BorrowStatusResponse struct {
	Status         string     `json:"status"`
	ActiveRecordID *uuid.UUID `json:"recordId,omitempty"`
	BorrowCount    int        `json:"borrowCount"`
}

type BorrowCountResponse struct {
	Count int `json:"count"`
}

func FromRecordView(view *queries.RecordView) *RecordResponse {
	var resp RecordResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRecordViews(views []*queries.RecordView) []*RecordResponse {
	result := make([]*RecordResponse, len(views))
	for i, v := range views {
		result[i] = FromRecordView(v)
	}
	return result
}

func FromOverdueRecordViews(views []*queries.OverdueRecordView) []*OverdueRecordResponse {
	result := make([]*OverdueRecordResponse, len(views))
	for i, v := range views {
		var resp OverdueRecordResponse
		_ = copier.Copy(&resp, v)
		result[i] = &resp
	}
	return result
}

func FromBorrowStatusView(view *queries.BorrowStatusView) *BorrowStatusResponse {
	return &BorrowStatusResponse{
		Status:         view.Status,
		ActiveRecordID: view.ActiveRecordID,
		BorrowCount:    view.BorrowCount,
	}
}
