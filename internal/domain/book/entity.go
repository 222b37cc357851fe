package book

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is one catalog entry. availableCopies counts free physical copies
// and is mutated only by the lending engine and catalog admin edits;
// 0 <= availableCopies <= totalCopies holds at all times.
type Book struct {
	id              uuid.UUID
	code            Code
	title           string
	author          string
	genre           string
	about           string
	image           string
	totalCopies     int
	availableCopies int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBook(code Code, title, author, genre, about, image string, totalCopies int) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrEmptyAuthor
	}
	if strings.TrimSpace(genre) == "" {
		return nil, ErrEmptyGenre
	}
	if strings.TrimSpace(image) == "" {
		return nil, ErrEmptyImage
	}
	if totalCopies < 0 {
		return nil, ErrNegativeCopies
	}

	// All copies start available.
	return &Book{
		id:              uuid.New(),
		code:            code,
		title:           strings.TrimSpace(title),
		author:          strings.TrimSpace(author),
		genre:           strings.TrimSpace(genre),
		about:           strings.TrimSpace(about),
		image:           image,
		totalCopies:     totalCopies,
		availableCopies: totalCopies,
	}, nil
}

func ReconstructBook(
	id uuid.UUID,
	code Code,
	title, author, genre, about, image string,
	totalCopies, availableCopies int,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:              id,
		code:            code,
		title:           title,
		author:          author,
		genre:           genre,
		about:           about,
		image:           image,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Code() Code           { return b.code }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) Genre() string        { return b.genre }
func (b *Book) About() string        { return b.about }
func (b *Book) Image() string        { return b.image }
func (b *Book) TotalCopies() int     { return b.totalCopies }
func (b *Book) AvailableCopies() int { return b.availableCopies }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

func (b *Book) IsAvailable() bool {
	return b.availableCopies > 0
}

// ClampCopyCounts resolves an admin edit of the copy counters.
// When only the total changes, the availability delta follows it; an
// explicitly supplied availability wins but is capped to the new total.
// Returns the resolved (total, available) pair without mutating the entity.
func ClampCopyCounts(oldTotal, oldAvailable int, newTotal, newAvailable *int) (int, int, error) {
	total := oldTotal
	available := oldAvailable

	if newTotal != nil {
		if *newTotal < 0 {
			return 0, 0, ErrNegativeCopies
		}
		total = *newTotal
	}

	switch {
	case newAvailable != nil:
		if *newAvailable < 0 {
			return 0, 0, ErrNegativeCopies
		}
		available = *newAvailable
	case newTotal != nil:
		available = max(0, oldAvailable+(total-oldTotal))
	}

	if available > total {
		available = total
	}
	return total, available, nil
}
