package queries

import (
	"context"

	"library-lending/internal/infra"
	"library-lending/internal/pkg/errs"

	"github.com/google/uuid"
)

// Homepage listing cap carried over from the observed system.
const availableBooksLimit = 20

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	// ListAvailable returns books with at least one free copy, for the
	// public homepage.
	ListAvailable(ctx context.Context) ([]*BookListItem, error)
	// ListAll returns every book including fully borrowed ones (admin view).
	ListAll(ctx context.Context) ([]*BookView, error)
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	FindAvailable(ctx context.Context, limit int32) ([]*BookListItem, error)
	FindAll(ctx context.Context) ([]*BookView, error)
}

type bookQueriesImpl struct {
	store BookReadStore
}

func NewBookQueries(store BookReadStore) BookQueries {
	return &bookQueriesImpl{store: store}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}
	return view, nil
}

func (q *bookQueriesImpl) ListAvailable(ctx context.Context) ([]*BookListItem, error) {
	books, err := q.store.FindAvailable(ctx, availableBooksLimit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available books")
	}
	return books, nil
}

func (q *bookQueriesImpl) ListAll(ctx context.Context) ([]*BookView, error) {
	books, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list books")
	}
	return books, nil
}
