package commands

import (
	"context"

	"library-lending/internal/domain/user"
	"library-lending/internal/infra"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/errs"
	"library-lending/internal/usecase/queries"
	"library-lending/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProfileValidation = errs.New("profile validation failed")

type CompleteProfileParams struct {
	Email string
	Name  string
	Phone string
	Photo string
}

type IdentityCommands interface {
	// CompleteProfile registers a user, or refreshes the profile of an
	// existing one matched by email, and returns the resulting view.
	CompleteProfile(ctx context.Context, params CompleteProfileParams) (*queries.UserView, error)
	SetUserBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*queries.UserView, error)
}

type identityUseCaseImpl struct {
	uow   shared.UnitOfWork
	users queries.UserQueries
	clock clock.Clock
}

func NewIdentityCommands(uow shared.UnitOfWork, users queries.UserQueries, clk clock.Clock) IdentityCommands {
	return &identityUseCaseImpl{uow: uow, users: users, clock: clk}
}

func (uc *identityUseCaseImpl) CompleteProfile(ctx context.Context, params CompleteProfileParams) (*queries.UserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileValidation)
	}
	phone, err := user.NewPhone(params.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileValidation)
	}
	photo, err := user.NewPhoto(params.Photo)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileValidation)
	}
	if _, err = user.NewUser(email, params.Name, phone, photo); err != nil {
		return nil, errs.Mark(err, ErrProfileValidation)
	}

	var userID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Upsert(ctx, tx.DB(), shared.UpsertUserParams{
			Email:        email.Value(),
			Name:         params.Name,
			Phone:        phone.Value(),
			Photo:        photo.Value(),
			RegisteredAt: uc.clock.Now(),
		})
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *identityUseCaseImpl) SetUserBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*queries.UserView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().SetBlocked(ctx, tx.DB(), id, blocked); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
