package response

import (
	"time"

	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phoneNumber"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"isBlocked"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// GoogleLoginResponse signals whether the caller still has to complete
// their profile. User is nil in that case.
type GoogleLoginResponse struct {
	NeedsCompletion bool          `json:"needsCompletion"`
	User            *UserResponse `json:"user,omitempty"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	result := make([]*UserResponse, len(views))
	for i, v := range views {
		result[i] = FromUserView(v)
	}
	return result
}
