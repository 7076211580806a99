package domain

// Pagination is the validated skip/take window of a list query.
type Pagination struct {
	Skip int
	Take int
}

type PageMeta struct {
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// NewPageMeta derives paging metadata. A zero take yields no pages and
// keeps the caller on page 1.
func NewPageMeta(total int64, p Pagination) PageMeta {
	meta := PageMeta{TotalCount: total, CurrentPage: 1}
	if p.Take <= 0 {
		return meta
	}
	take := int64(p.Take)
	meta.TotalPages = int((total + take - 1) / take)
	meta.CurrentPage = p.Skip/p.Take + 1
	return meta
}
