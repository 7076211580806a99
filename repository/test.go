package repository

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/gorm"
)

const testWithCounts = "tests.*, " +
	"(SELECT COUNT(*) FROM test_results WHERE test_results.test_id = tests.id) AS result_count"

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) domain.TestRepository {
	return &testRepository{db: db}
}

func withCourse(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Course", selectCourseBrief).
		Preload("Course.Instructor", selectUserName)
}

func (r *testRepository) CreateTest(ctx context.Context, test *domain.Test) error {
	if err := r.db.WithContext(ctx).Omit("Course", "Results").Create(test).Error; err != nil {
		return utils.TranslateDBError(err, domain.EntityTest, "")
	}
	return nil
}

func (r *testRepository) GetTestByID(ctx context.Context, id string) (*domain.Test, error) {
	var test domain.Test
	err := r.db.WithContext(ctx).
		Select(testWithCounts).
		Scopes(withCourse).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("taken_at DESC") }).
		Preload("Results.User", selectUserBrief).
		Where("tests.id = ?", id).
		First(&test).Error
	if err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityTest, "")
	}
	attachTestCount(&test)
	return &test, nil
}

func (r *testRepository) GetAllTests(ctx context.Context, filter domain.TestFilter) ([]domain.Test, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Test{})
	if filter.CourseID != "" {
		query = query.Where("tests.course_id = ?", filter.CourseID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to count tests: %w", err), domain.EntityTest, "")
	}

	tests := []domain.Test{}
	err := query.Select(testWithCounts).
		Scopes(withCourse, paginate(filter.Pagination)).
		Order("tests.created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to fetch tests: %w", err), domain.EntityTest, "")
	}
	for i := range tests {
		attachTestCount(&tests[i])
	}
	return tests, total, nil
}

func (r *testRepository) GetTestsByCourse(ctx context.Context, courseID string) ([]domain.Test, error) {
	tests := []domain.Test{}
	err := r.db.WithContext(ctx).
		Select(testWithCounts).
		Where("tests.course_id = ?", courseID).
		Order("tests.created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, utils.TranslateDBError(fmt.Errorf("failed to fetch tests by course: %w", err), domain.EntityTest, "")
	}
	for i := range tests {
		attachTestCount(&tests[i])
	}
	return tests, nil
}

func (r *testRepository) UpdateTest(ctx context.Context, id string, update domain.TestUpdate) (*domain.Test, error) {
	if update.Title != nil {
		res := r.db.WithContext(ctx).Model(&domain.Test{}).
			Where("id = ?", id).
			Update("title", *update.Title)
		if res.Error != nil {
			return nil, utils.TranslateDBError(res.Error, domain.EntityTest, "")
		}
		if res.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(domain.EntityTest)
		}
	}
	return r.GetTestByID(ctx, id)
}

func (r *testRepository) DeleteTest(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Test{}, "id = ?", id)
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityTest, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityTest)
	}
	return nil
}

func attachTestCount(t *domain.Test) {
	t.Count = &domain.TestCount{Results: t.ResultCount}
}
