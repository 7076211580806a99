package repository

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/gorm"
)

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) domain.TestResultRepository {
	return &testResultRepository{db: db}
}

func withUserAndTest(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", selectUserBrief).
		Preload("Test", selectTestBrief)
}

func (r *testResultRepository) CreateTestResult(ctx context.Context, result *domain.TestResult) error {
	if err := r.db.WithContext(ctx).Omit("User", "Test").Create(result).Error; err != nil {
		return utils.TranslateDBError(err, domain.EntityTestResult, domain.MsgTestResultExists)
	}
	return nil
}

func (r *testResultRepository) GetTestResultByID(ctx context.Context, id string) (*domain.TestResult, error) {
	var result domain.TestResult
	if err := r.db.WithContext(ctx).Scopes(withUserAndTest).First(&result, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityTestResult, "")
	}
	return &result, nil
}

// GetByUserAndTest returns nil, nil when the user has no result for the test.
func (r *testResultRepository) GetByUserAndTest(ctx context.Context, userID, testID string) (*domain.TestResult, error) {
	var results []domain.TestResult
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Limit(1).
		Find(&results).Error
	if err != nil {
		return nil, utils.TranslateDBError(fmt.Errorf("failed to check test result: %w", err), domain.EntityTestResult, "")
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *testResultRepository) GetAllTestResults(ctx context.Context, filter domain.TestResultFilter) ([]domain.TestResult, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.TestResult{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.TestID != "" {
		query = query.Where("test_id = ?", filter.TestID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to count test results: %w", err), domain.EntityTestResult, "")
	}

	results := []domain.TestResult{}
	err := query.Scopes(withUserAndTest, paginate(filter.Pagination)).
		Order("taken_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to fetch test results: %w", err), domain.EntityTestResult, "")
	}
	return results, total, nil
}

func (r *testResultRepository) UpdateTestResult(ctx context.Context, id string, update domain.TestResultUpdate) (*domain.TestResult, error) {
	if update.Score != nil {
		res := r.db.WithContext(ctx).Model(&domain.TestResult{}).
			Where("id = ?", id).
			Update("score", *update.Score)
		if res.Error != nil {
			return nil, utils.TranslateDBError(res.Error, domain.EntityTestResult, "")
		}
		if res.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(domain.EntityTestResult)
		}
	}
	return r.GetTestResultByID(ctx, id)
}

func (r *testResultRepository) DeleteTestResult(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.TestResult{}, "id = ?", id)
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityTestResult, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityTestResult)
	}
	return nil
}
