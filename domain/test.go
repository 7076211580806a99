package domain

import "context"

type TestFilter struct {
	Pagination
	CourseID string
}

type TestList struct {
	Tests []Test `json:"tests"`
	PageMeta
}

type TestUpdate struct {
	Title *string
}

type TestRepository interface {
	CreateTest(ctx context.Context, test *Test) error
	GetTestByID(ctx context.Context, id string) (*Test, error)
	GetAllTests(ctx context.Context, filter TestFilter) ([]Test, int64, error)
	GetTestsByCourse(ctx context.Context, courseID string) ([]Test, error)
	UpdateTest(ctx context.Context, id string, update TestUpdate) (*Test, error)
	DeleteTest(ctx context.Context, id string) error
}

type TestUseCase interface {
	CreateTest(ctx context.Context, test *Test) (*Test, error)
	GetTestByID(ctx context.Context, id string) (*Test, error)
	GetAllTests(ctx context.Context, filter TestFilter) (*TestList, error)
	GetTestsByCourse(ctx context.Context, courseID string) ([]Test, error)
	UpdateTest(ctx context.Context, id string, update TestUpdate) (*Test, error)
	DeleteTest(ctx context.Context, id string) error
}
