package dto

import "io"

// WorkflowPageSize is the fixed page size of the payment and package listings.
const WorkflowPageSize = 5

type PageQuery struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

func (q PageQuery) Offset(limit int) int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	if page < 1 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       limit,
	}
}

// ImageFile carries an uploaded multipart image into the service layer.
type ImageFile struct {
	Reader   io.Reader
	FileName string
}

// Close releases the underlying multipart file, if it is closable.
func (f *ImageFile) Close() {
	if f == nil {
		return
	}
	if closer, ok := f.Reader.(io.Closer); ok {
		closer.Close()
	}
}
