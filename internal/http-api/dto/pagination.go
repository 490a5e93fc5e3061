package dto

// Page is the envelope for every paginated list response.
type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

func NewPage[T any](list []T, total int64, page, pageSize int) *Page[T] {
	if list == nil {
		list = []T{}
	}
	return &Page[T]{List: list, Total: total, Page: page, PageSize: pageSize}
}
