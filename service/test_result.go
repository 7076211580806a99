package service

import (
	"context"
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type testResultService struct {
	repo     domain.TestResultRepository
	userRepo domain.UserRepository
	testRepo domain.TestRepository
}

func NewTestResultService(repo domain.TestResultRepository, userRepo domain.UserRepository, testRepo domain.TestRepository) domain.TestResultUseCase {
	return &testResultService{repo: repo, userRepo: userRepo, testRepo: testRepo}
}

// CreateTestResult checks user, then test, then the one-result-per-test rule.
func (s *testResultService) CreateTestResult(ctx context.Context, result *domain.TestResult) (*domain.TestResult, error) {
	if result == nil {
		return nil, errors.New("test result is nil")
	}

	if _, err := s.userRepo.GetUserByID(ctx, result.UserID); err != nil {
		return nil, asNotFound(err, domain.EntityUser)
	}
	if _, err := s.testRepo.GetTestByID(ctx, result.TestID); err != nil {
		return nil, asNotFound(err, domain.EntityTest)
	}

	existing, err := s.repo.GetByUserAndTest(ctx, result.UserID, result.TestID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.MsgTestResultExists)
	}

	if err := s.repo.CreateTestResult(ctx, result); err != nil {
		return nil, err
	}
	return s.repo.GetTestResultByID(ctx, result.ID)
}

func (s *testResultService) GetTestResultByID(ctx context.Context, id string) (*domain.TestResult, error) {
	return s.repo.GetTestResultByID(ctx, id)
}

func (s *testResultService) GetAllTestResults(ctx context.Context, filter domain.TestResultFilter) (*domain.TestResultList, error) {
	results, total, err := s.repo.GetAllTestResults(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.TestResultList{
		TestResults: results,
		PageMeta:    domain.NewPageMeta(total, filter.Pagination),
	}, nil
}

func (s *testResultService) UpdateTestResult(ctx context.Context, id string, update domain.TestResultUpdate) (*domain.TestResult, error) {
	result, err := s.repo.GetTestResultByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Score == nil {
		return result, nil
	}
	return s.repo.UpdateTestResult(ctx, id, update)
}

func (s *testResultService) DeleteTestResult(ctx context.Context, id string) error {
	if _, err := s.repo.GetTestResultByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteTestResult(ctx, id)
}
