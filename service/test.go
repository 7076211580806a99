package service

import (
	"context"
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type testService struct {
	repo domain.TestRepository
}

func NewTestService(repo domain.TestRepository) domain.TestUseCase {
	return &testService{repo: repo}
}

// CreateTest writes without a course pre-check; a dangling courseId is
// rejected by the store's foreign key.
func (s *testService) CreateTest(ctx context.Context, test *domain.Test) (*domain.Test, error) {
	if test == nil {
		return nil, errors.New("test is nil")
	}
	if err := s.repo.CreateTest(ctx, test); err != nil {
		return nil, err
	}
	return s.repo.GetTestByID(ctx, test.ID)
}

func (s *testService) GetTestByID(ctx context.Context, id string) (*domain.Test, error) {
	return s.repo.GetTestByID(ctx, id)
}

func (s *testService) GetAllTests(ctx context.Context, filter domain.TestFilter) (*domain.TestList, error) {
	tests, total, err := s.repo.GetAllTests(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.TestList{
		Tests:    tests,
		PageMeta: domain.NewPageMeta(total, filter.Pagination),
	}, nil
}

func (s *testService) GetTestsByCourse(ctx context.Context, courseID string) ([]domain.Test, error) {
	return s.repo.GetTestsByCourse(ctx, courseID)
}

func (s *testService) UpdateTest(ctx context.Context, id string, update domain.TestUpdate) (*domain.Test, error) {
	test, err := s.repo.GetTestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title == nil {
		return test, nil
	}
	return s.repo.UpdateTest(ctx, id, update)
}

func (s *testService) DeleteTest(ctx context.Context, id string) error {
	if _, err := s.repo.GetTestByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteTest(ctx, id)
}
