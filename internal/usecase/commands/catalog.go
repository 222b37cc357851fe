package commands

import (
	"context"

	"library-lending/internal/domain/book"
	"library-lending/internal/infra"
	"library-lending/internal/pkg/errs"
	"library-lending/internal/usecase/queries"
	"library-lending/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateBookCode = errs.New("book code already exists")
	ErrBookBorrowed      = errs.New("book has active borrowings")
	ErrBookValidation    = errs.New("book validation failed")
)

type AddBookParams struct {
	Code        string
	Title       string
	Author      string
	Genre       string
	About       string
	Image       string
	TotalCopies int
}

type EditBookParams struct {
	Code            *string
	Title           *string
	Author          *string
	Genre           *string
	About           *string
	Image           *string
	TotalCopies     *int
	AvailableCopies *int
}

type CatalogCommands interface {
	AddBook(ctx context.Context, params AddBookParams) (*queries.BookView, error)
	EditBook(ctx context.Context, id uuid.UUID, params EditBookParams) (*queries.BookView, error)
	// DeleteBook refuses while any copy of the book is out on loan.
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	books queries.BookQueries
	cache ListingCache
}

func NewCatalogCommands(uow shared.UnitOfWork, books queries.BookQueries, cache ListingCache) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, books: books, cache: cache}
}

func (uc *catalogUseCaseImpl) AddBook(ctx context.Context, params AddBookParams) (*queries.BookView, error) {
	code, err := book.NewCode(params.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrBookValidation)
	}
	b, err := book.NewBook(code, params.Title, params.Author, params.Genre, params.About, params.Image, params.TotalCopies)
	if err != nil {
		return nil, errs.Mark(err, ErrBookValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Books().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateBookCode
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	return uc.readBack(ctx, createdID)
}

// EditBook patches only the supplied fields. Copy counters are reconciled
// against the stored values so the available count can never exceed the
// total nor go negative, whatever combination the admin sends.
func (uc *catalogUseCaseImpl) EditBook(ctx context.Context, id uuid.UUID, params EditBookParams) (*queries.BookView, error) {
	if params.Code != nil {
		if _, err := book.NewCode(*params.Code); err != nil {
			return nil, errs.Mark(err, ErrBookValidation)
		}
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().BookByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		total, available, derr := book.ClampCopyCounts(
			current.TotalCopies, current.AvailableCopies,
			params.TotalCopies, params.AvailableCopies,
		)
		if derr != nil {
			return errs.Mark(derr, ErrBookValidation)
		}

		update := shared.UpdateBookParams{
			Code:            params.Code,
			Title:           params.Title,
			Author:          params.Author,
			Genre:           params.Genre,
			About:           params.About,
			Image:           params.Image,
			TotalCopies:     total,
			AvailableCopies: available,
		}
		if derr = tx.Books().Update(ctx, tx.DB(), id, update); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrBookNotFound
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return ErrDuplicateBookCode
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	return uc.readBack(ctx, id)
}

func (uc *catalogUseCaseImpl) DeleteBook(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, derr := tx.Records().ExistsActiveByBook(ctx, tx.DB(), id)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if active {
			return ErrBookBorrowed
		}
		if derr = tx.Books().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.invalidateListings(ctx)
	return nil
}

func (uc *catalogUseCaseImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	view, err := uc.books.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *catalogUseCaseImpl) invalidateListings(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateBookListings(ctx)
	}
}
