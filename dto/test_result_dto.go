package dto

import "github.com/uchkunrakhimow/edtech-platform/domain"

type CreateTestResultRequest struct {
	UserID string   `json:"userId" binding:"required,uuid"`
	TestID string   `json:"testId" binding:"required,uuid"`
	Score  *float64 `json:"score" binding:"required,min=0,max=100"`
}

type UpdateTestResultRequest struct {
	Score *float64 `json:"score" binding:"required,min=0,max=100"`
}

type TestResultListQuery struct {
	PageQuery
	UserID string `form:"userId" binding:"omitempty,uuid"`
	TestID string `form:"testId" binding:"omitempty,uuid"`
}

func MapCreateTestResultRequest(req *CreateTestResultRequest) *domain.TestResult {
	return &domain.TestResult{
		UserID: req.UserID,
		TestID: req.TestID,
		Score:  *req.Score,
	}
}

func MapUpdateTestResultRequest(req *UpdateTestResultRequest) domain.TestResultUpdate {
	return domain.TestResultUpdate{Score: req.Score}
}

func (q TestResultListQuery) ToFilter() (domain.TestResultFilter, error) {
	page, err := q.ToPagination()
	if err != nil {
		return domain.TestResultFilter{}, err
	}
	return domain.TestResultFilter{Pagination: page, UserID: q.UserID, TestID: q.TestID}, nil
}
