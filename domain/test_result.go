package domain

import "context"

type TestResultFilter struct {
	Pagination
	UserID string
	TestID string
}

type TestResultList struct {
	TestResults []TestResult `json:"testResults"`
	PageMeta
}

type TestResultUpdate struct {
	Score *float64
}

type TestResultRepository interface {
	CreateTestResult(ctx context.Context, result *TestResult) error
	GetTestResultByID(ctx context.Context, id string) (*TestResult, error)
	GetByUserAndTest(ctx context.Context, userID, testID string) (*TestResult, error)
	GetAllTestResults(ctx context.Context, filter TestResultFilter) ([]TestResult, int64, error)
	UpdateTestResult(ctx context.Context, id string, update TestResultUpdate) (*TestResult, error)
	DeleteTestResult(ctx context.Context, id string) error
}

type TestResultUseCase interface {
	CreateTestResult(ctx context.Context, result *TestResult) (*TestResult, error)
	GetTestResultByID(ctx context.Context, id string) (*TestResult, error)
	GetAllTestResults(ctx context.Context, filter TestResultFilter) (*TestResultList, error)
	UpdateTestResult(ctx context.Context, id string, update TestResultUpdate) (*TestResult, error)
	DeleteTestResult(ctx context.Context, id string) error
}
