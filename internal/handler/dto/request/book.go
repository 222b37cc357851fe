package request

type AddBookRequest struct {
	Code        string `json:"code" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
	About       string `json:"about"`
	Image       string `json:"image" binding:"required,dataimage"`
	TotalCopies int    `json:"totalCopies" binding:"omitempty,gte=0"`
}

// EditBookRequest patches the supplied fields only; absent fields keep
// their stored values.
type EditBookRequest struct {
	Code            *string `json:"code,omitempty"`
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	About           *string `json:"about,omitempty"`
	Image           *string `json:"image,omitempty" binding:"omitempty,dataimage"`
	TotalCopies     *int    `json:"totalCopies,omitempty" binding:"omitempty,gte=0"`
	AvailableCopies *int    `json:"availableCopies,omitempty" binding:"omitempty,gte=0"`
}
