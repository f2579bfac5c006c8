package dto

// APIResponse is the success envelope placed around every task endpoint result.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// PageSort describes the ordering applied to a page.
type PageSort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
	Sorted    bool   `json:"sorted"`
}

// PageResponse is one page of a sorted result set. Page numbers are zero-based.
type PageResponse[T any] struct {
	Content          []T      `json:"content"`
	Number           int      `json:"number"`
	Size             int      `json:"size"`
	TotalElements    int64    `json:"totalElements"`
	TotalPages       int      `json:"totalPages"`
	NumberOfElements int      `json:"numberOfElements"`
	First            bool     `json:"first"`
	Last             bool     `json:"last"`
	Empty            bool     `json:"empty"`
	Sort             PageSort `json:"sort"`
}

// NewPageResponse derives the page metadata from the request and the total count.
func NewPageResponse[T any](content []T, page, size int, total int64, sort PageSort) PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PageResponse[T]{
		Content:          content,
		Number:           page,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            page == 0,
		Last:             page+1 >= totalPages,
		Empty:            len(content) == 0,
		Sort:             sort,
	}
}
