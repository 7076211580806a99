package dto

import (
	"strconv"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

// PageQuery holds the raw skip/take query parameters. They arrive as
// strings and are only turned into numbers after validation.
type PageQuery struct {
	Skip string `form:"skip" binding:"omitempty,number"`
	Take string `form:"take" binding:"omitempty,number"`
}

// ToPagination applies the defaults (skip=0, take=10).
func (q PageQuery) ToPagination() (domain.Pagination, error) {
	p := domain.Pagination{Skip: domain.DefaultSkip, Take: domain.DefaultTake}
	var err error
	if q.Skip != "" {
		if p.Skip, err = strconv.Atoi(q.Skip); err != nil {
			return p, domain.NewValidationError("skip", "Skip must be a non-negative integer")
		}
	}
	if q.Take != "" {
		if p.Take, err = strconv.Atoi(q.Take); err != nil {
			return p, domain.NewValidationError("take", "Take must be a non-negative integer")
		}
	}
	return p, nil
}

type IDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type CourseIDParam struct {
	CourseID string `uri:"courseId" binding:"required,uuid"`
}

type PopularQuery struct {
	Limit string `form:"limit" binding:"omitempty,number"`
}

func (q PopularQuery) ToLimit() (int, error) {
	if q.Limit == "" {
		return domain.DefaultPopularLimit, nil
	}
	limit, err := strconv.Atoi(q.Limit)
	if err != nil {
		return 0, domain.NewValidationError("limit", "Limit must be a non-negative integer")
	}
	return limit, nil
}
