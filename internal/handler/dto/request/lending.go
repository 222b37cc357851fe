package request

import (
	"github.com/google/uuid"
)

type BorrowRequest struct {
	UserID       uuid.UUID `json:"userId" binding:"required"`
	BorrowImages []string  `json:"borrowImages" binding:"required,len=4,dive,required,dataimage"`
}

type ReturnRequest struct {
	UserID       uuid.UUID `json:"userId" binding:"required"`
	ReturnImages []string  `json:"returnImages" binding:"required,len=4,dive,required,dataimage"`
}
