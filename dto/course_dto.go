package dto

import (
	"strings"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

// Counts decode into float64 so a fractional value is reported alongside the
// other field errors instead of aborting the decode.
type CreateCourseRequest struct {
	Title        string   `json:"title" binding:"required,notblank,trimmin=3"`
	Description  string   `json:"description" binding:"required,notblank,min=10"`
	Price        *float64 `json:"price" binding:"required,min=0"`
	VideoCount   *float64 `json:"videoCount" binding:"required,integer,gt=0"`
	Duration     *float64 `json:"duration" binding:"required,integer,gt=0"`
	InstructorID string   `json:"instructorId" binding:"required,uuid"`
}

// UpdateCourseRequest: every field optional, nil means absent.
type UpdateCourseRequest struct {
	Title       *string  `json:"title" binding:"omitempty,notblank,trimmin=3"`
	Description *string  `json:"description" binding:"omitempty,notblank,min=10"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	VideoCount  *float64 `json:"videoCount" binding:"omitempty,integer,gt=0"`
	Duration    *float64 `json:"duration" binding:"omitempty,integer,gt=0"`
}

type CourseListQuery struct {
	PageQuery
	InstructorID string `form:"instructorId" binding:"omitempty,uuid"`
	SearchTerm   string `form:"searchTerm" binding:"omitempty,max=200"`
}

func MapCreateCourseRequestToCourse(req *CreateCourseRequest) *domain.Course {
	return &domain.Course{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Price:        *req.Price,
		VideoCount:   int(*req.VideoCount),
		Duration:     int(*req.Duration),
		InstructorID: req.InstructorID,
	}
}

func MapUpdateCourseRequest(req *UpdateCourseRequest) domain.CourseUpdate {
	return domain.CourseUpdate{
		Title:       trimmed(req.Title),
		Description: req.Description,
		Price:       req.Price,
		VideoCount:  intPtr(req.VideoCount),
		Duration:    intPtr(req.Duration),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func intPtr(f *float64) *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func (q CourseListQuery) ToFilter() (domain.CourseFilter, error) {
	page, err := q.ToPagination()
	if err != nil {
		return domain.CourseFilter{}, err
	}
	return domain.CourseFilter{
		Pagination:   page,
		InstructorID: q.InstructorID,
		SearchTerm:   strings.TrimSpace(q.SearchTerm),
	}, nil
}
