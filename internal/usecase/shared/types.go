package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.
type BookSnapshot struct {
	ID              uuid.UUID
	Code            string
	Title           string
	TotalCopies     int
	AvailableCopies int
}

type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      string
	IsBlocked bool
}

// ReservedCopy is what a successful compare-and-decrement hands back to
// the engine: enough to stamp the ledger record without a second read.
type ReservedCopy struct {
	BookID          uuid.UUID
	BookCode        string
	AvailableCopies int
}

type UpdateBookParams struct {
	Code            *string
	Title           *string
	Author          *string
	Genre           *string
	About           *string
	Image           *string
	TotalCopies     int
	AvailableCopies int
}

type UpsertUserParams struct {
	Email        string
	Name         string
	Phone        string
	Photo        string
	RegisteredAt time.Time
}
