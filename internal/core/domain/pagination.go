package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	HasNext     bool
	HasPrev     bool
}

// Paginate slices a 1-indexed page out of items. page < 1 and limit < 1 fall
// back to the defaults; a page past the end yields an empty slice with
// correct metadata rather than an error.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	startIndex := (page - 1) * limit
	endIndex := page * limit

	totalPages := (total + limit - 1) / limit

	pageItems := []T{}
	if startIndex < total {
		if endIndex > total {
			endIndex = total
		}
		pageItems = append(pageItems, items[startIndex:endIndex]...)
	}

	return pageItems, Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     endIndex < total,
		HasPrev:     startIndex > 0,
	}
}
