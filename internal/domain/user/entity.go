package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBlocked = errors.New("user is blocked from borrowing")

type User struct {
	id           uuid.UUID
	email        Email
	name         string
	phone        Phone
	photo        Photo
	role         Role
	isBlocked    bool
	registeredAt time.Time
}

func NewUser(email Email, name string, phone Phone, photo Photo) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:        uuid.New(),
		email:     email,
		name:      name,
		phone:     phone,
		photo:     photo,
		role:      RoleUser,
		isBlocked: false,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name string,
	phone Phone,
	photo Photo,
	role Role,
	isBlocked bool,
	registeredAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		phone:        phone,
		photo:        photo,
		role:         role,
		isBlocked:    isBlocked,
		registeredAt: registeredAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) Phone() Phone            { return u.phone }
func (u *User) Photo() Photo            { return u.photo }
func (u *User) Role() Role              { return u.role }
func (u *User) IsBlocked() bool         { return u.isBlocked }
func (u *User) RegisteredAt() time.Time { return u.registeredAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// CanBorrow is the blocked-state guard evaluated at the start of every
// borrow operation, independent of storage.
func (u *User) CanBorrow() error {
	if u.isBlocked {
		return ErrBlocked
	}
	return nil
}
