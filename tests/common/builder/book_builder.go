//go:build unit || e2e

package builder

import (
	"time"

	dombook "library-lending/internal/domain/book"
	reqdto "library-lending/internal/handler/dto/request"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID              uuid.UUID
	Code            string
	Title           string
	Author          string
	Genre           string
	About           string
	Image           string
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	return &BookBuilder{
		ID:              uuid.New(),
		Code:            "BK-0001",
		Title:           "The Go Programming Language",
		Author:          "Alan Donovan",
		Genre:           "Technology",
		About:           "A reference for working programmers.",
		Image:           "data:image/png;base64,iVBORw0KGgo=",
		TotalCopies:     3,
		AvailableCopies: 3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildDomain() (*dombook.Book, error) {
	code, err := dombook.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	return dombook.NewBook(code, b.Title, b.Author, b.Genre, b.About, b.Image, b.TotalCopies)
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:              b.ID,
		Code:            b.Code,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		About:           b.About,
		Image:           b.Image,
		TotalCopies:     int32(b.TotalCopies),
		AvailableCopies: int32(b.AvailableCopies),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookBuilder) BuildListItem() *queries.BookListItem {
	return &queries.BookListItem{
		ID:              b.ID,
		Code:            b.Code,
		Title:           b.Title,
		Author:          b.Author,
		Image:           b.Image,
		AvailableCopies: int32(b.AvailableCopies),
	}
}

func (b *BookBuilder) BuildAddRequestDTO() reqdto.AddBookRequest {
	return reqdto.AddBookRequest{
		Code:        b.Code,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		About:       b.About,
		Image:       b.Image,
		TotalCopies: b.TotalCopies,
	}
}
