//go:build unit || e2e

package builder

import (
	"time"

	domuser "library-lending/internal/domain/user"
	reqdto "library-lending/internal/handler/dto/request"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	Photo        string
	Role         string
	IsBlocked    bool
	RegisteredAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "patron@example.com",
		Name:         "Test Patron",
		Phone:        "0123456789",
		Photo:        "data:image/jpeg;base64,/9j/4AAQ",
		Role:         "user",
		IsBlocked:    false,
		RegisteredAt: time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = "admin"
	return b
}

func (b *UserBuilder) Blocked() *UserBuilder {
	b.IsBlocked = true
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := domuser.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	photo, err := domuser.NewPhoto(b.Photo)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, b.Name, phone, photo)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:           b.ID,
		Email:        b.Email,
		Name:         b.Name,
		PhoneNumber:  b.Phone,
		Role:         b.Role,
		IsBlocked:    b.IsBlocked,
		RegisteredAt: b.RegisteredAt,
	}
}

func (b *UserBuilder) BuildCompleteProfileRequestDTO() reqdto.CompleteProfileRequest {
	return reqdto.CompleteProfileRequest{
		Email:       b.Email,
		Name:        b.Name,
		PhoneNumber: b.Phone,
		Photo:       b.Photo,
	}
}
