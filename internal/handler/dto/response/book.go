package response

import (
	"time"

	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	About           string    `json:"about"`
	Image           string    `json:"image"`
	TotalCopies     int32     `json:"totalCopies"`
	AvailableCopies int32     `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Image           string    `json:"image"`
	AvailableCopies int32     `json:"availableCopies"`
}

func FromBookView(view *queries.BookView) *BookResponse {
	var resp BookResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookViews(views []*queries.BookView) []*BookResponse {
	result := make([]*BookResponse, len(views))
	for i, v := range views {
		result[i] = FromBookView(v)
	}
	return result
}

func FromBookListItems(items []*queries.BookListItem) []*BookListItemResponse {
	result := make([]*BookListItemResponse, len(items))
	for i, item := range items {
		var resp BookListItemResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
