//go:build unit

package user_test

import (
	"testing"

	"library-lending/internal/domain/user"
	"library-lending/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "patron@example.com", actual.Email().Value())
		assert.Equal(t, "Test Patron", actual.Name())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.False(t, actual.IsBlocked())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.Email = "patron.example.com" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.Email = "patron@" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.UserBuilder) { b.Email = "  patron@example.com  " },
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "nine digits",
				mutate: func(b *builder.UserBuilder) { b.Phone = "012345678" },
				errIs:  user.ErrInvalidPhone,
			},
			{
				name:   "eleven digits",
				mutate: func(b *builder.UserBuilder) { b.Phone = "01234567890" },
				errIs:  user.ErrInvalidPhone,
			},
			{
				name:   "letters in phone",
				mutate: func(b *builder.UserBuilder) { b.Phone = "01234abcde" },
				errIs:  user.ErrInvalidPhone,
			},
			{
				name:   "exactly ten digits",
				mutate: func(b *builder.UserBuilder) { b.Phone = "9876543210" },
			},
		})
	})

	t.Run("photo validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain url is rejected",
				mutate: func(b *builder.UserBuilder) { b.Photo = "https://example.com/me.jpg" },
				errIs:  user.ErrInvalidPhoto,
			},
			{
				name:   "empty photo",
				mutate: func(b *builder.UserBuilder) { b.Photo = "" },
				errIs:  user.ErrInvalidPhoto,
			},
			{
				name:   "png data uri",
				mutate: func(b *builder.UserBuilder) { b.Photo = "data:image/png;base64,iVBORw0KGgo=" },
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.Name = "" },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
		})
	})
}

func TestCanBorrow(t *testing.T) {
	t.Run("active user can borrow", func(t *testing.T) {
		u := reconstruct(t, builder.NewUserBuilder())
		require.NoError(t, u.CanBorrow())
	})

	t.Run("blocked user cannot borrow", func(t *testing.T) {
		u := reconstruct(t, builder.NewUserBuilder().Blocked())
		require.ErrorIs(t, u.CanBorrow(), user.ErrBlocked)
	})

	t.Run("blocked admin cannot borrow either", func(t *testing.T) {
		u := reconstruct(t, builder.NewUserBuilder().AsAdmin().Blocked())
		assert.True(t, u.IsAdmin())
		require.ErrorIs(t, u.CanBorrow(), user.ErrBlocked)
	})
}

func reconstruct(t *testing.T, b *builder.UserBuilder) *user.User {
	t.Helper()

	email, err := user.NewEmail(b.Email)
	require.NoError(t, err)
	phone, err := user.NewPhone(b.Phone)
	require.NoError(t, err)
	photo, err := user.NewPhoto(b.Photo)
	require.NoError(t, err)
	role, err := user.NewRole(b.Role)
	require.NoError(t, err)

	return user.ReconstructUser(b.ID, email, b.Name, phone, photo, role, b.IsBlocked, b.RegisteredAt)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
