package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")
	ErrInvalidPhoto = errors.New("invalid photo data format")
	ErrEmptyName    = errors.New("name is required")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

// Photo is the face-presence capture stored as a data-URI string.
// Only presence and format are checked, never image content.
type Photo struct {
	value string
}

func NewPhoto(s string) (Photo, error) {
	if !strings.HasPrefix(s, "data:image/") {
		return Photo{}, ErrInvalidPhoto
	}
	return Photo{value: s}, nil
}

func (p Photo) Value() string {
	return p.value
}
