package dto

import "github.com/uchkunrakhimow/edtech-platform/domain"

type CreateEnrollmentRequest struct {
	UserID   string   `json:"userId" binding:"required,uuid"`
	CourseID string   `json:"courseId" binding:"required,uuid"`
	Progress *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
}

type UpdateEnrollmentRequest struct {
	Progress *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
}

type EnrollmentListQuery struct {
	PageQuery
	UserID   string `form:"userId" binding:"omitempty,uuid"`
	CourseID string `form:"courseId" binding:"omitempty,uuid"`
}

func MapCreateEnrollmentRequest(req *CreateEnrollmentRequest) *domain.Enrollment {
	e := &domain.Enrollment{
		UserID:   req.UserID,
		CourseID: req.CourseID,
	}
	if req.Progress != nil {
		e.Progress = *req.Progress
	}
	return e
}

func MapUpdateEnrollmentRequest(req *UpdateEnrollmentRequest) domain.EnrollmentUpdate {
	return domain.EnrollmentUpdate{Progress: req.Progress}
}

func (q EnrollmentListQuery) ToFilter() (domain.EnrollmentFilter, error) {
	page, err := q.ToPagination()
	if err != nil {
		return domain.EnrollmentFilter{}, err
	}
	return domain.EnrollmentFilter{Pagination: page, UserID: q.UserID, CourseID: q.CourseID}, nil
}
