package dto

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type DataResponse struct {
	Data any `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
