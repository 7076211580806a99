package dto

import (
	"strings"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type CreateTestRequest struct {
	Title    string `json:"title" binding:"required,notblank,trimmin=3"`
	CourseID string `json:"courseId" binding:"required,uuid"`
}

type UpdateTestRequest struct {
	Title *string `json:"title" binding:"required,notblank,trimmin=3"`
}

type TestListQuery struct {
	PageQuery
	CourseID string `form:"courseId" binding:"omitempty,uuid"`
}

func MapCreateTestRequest(req *CreateTestRequest) *domain.Test {
	return &domain.Test{
		Title:    strings.TrimSpace(req.Title),
		CourseID: req.CourseID,
	}
}

func MapUpdateTestRequest(req *UpdateTestRequest) domain.TestUpdate {
	return domain.TestUpdate{Title: trimmed(req.Title)}
}

func (q TestListQuery) ToFilter() (domain.TestFilter, error) {
	page, err := q.ToPagination()
	if err != nil {
		return domain.TestFilter{}, err
	}
	return domain.TestFilter{Pagination: page, CourseID: q.CourseID}, nil
}
