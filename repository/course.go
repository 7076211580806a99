package repository

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/gorm"
)

const courseWithCounts = "courses.*, " +
	"(SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id) AS enrollment_count, " +
	"(SELECT COUNT(*) FROM tests WHERE tests.course_id = courses.id) AS test_count"

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	course.ViewCount = 0
	if err := r.db.WithContext(ctx).Omit("Instructor", "Tests").Create(course).Error; err != nil {
		return utils.TranslateDBError(err, domain.EntityCourse, domain.MsgCourseTitleTaken)
	}
	return nil
}

func (r *courseRepository) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Select(courseWithCounts).
		Preload("Instructor", selectUserBrief).
		Preload("Tests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Where("courses.id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityCourse, "")
	}
	attachCourseCount(&course)
	return &course, nil
}

func (r *courseRepository) GetAllCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Course{})
	if filter.InstructorID != "" {
		query = query.Where("courses.instructor_id = ?", filter.InstructorID)
	}
	if filter.SearchTerm != "" {
		pattern := likePattern(filter.SearchTerm)
		query = query.Where(`(LOWER(courses.title) LIKE ? ESCAPE '\' OR LOWER(courses.description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to count courses: %w", err), domain.EntityCourse, "")
	}

	courses := []domain.Course{}
	err := query.Select(courseWithCounts).
		Preload("Instructor", selectUserBrief).
		Scopes(paginate(filter.Pagination)).
		Order("courses.created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to fetch courses: %w", err), domain.EntityCourse, "")
	}
	for i := range courses {
		attachCourseCount(&courses[i])
	}
	return courses, total, nil
}

func (r *courseRepository) GetPopularCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	courses := []domain.Course{}
	if limit <= 0 {
		return courses, nil
	}
	err := r.db.WithContext(ctx).
		Select(courseWithCounts).
		Preload("Instructor", selectUserName).
		Order("courses.view_count DESC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, utils.TranslateDBError(fmt.Errorf("failed to fetch popular courses: %w", err), domain.EntityCourse, "")
	}
	for i := range courses {
		attachCourseCount(&courses[i])
	}
	return courses, nil
}

func (r *courseRepository) ExistsByTitle(ctx context.Context, title, instructorID, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("title = ? AND instructor_id = ?", title, instructorID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, utils.TranslateDBError(fmt.Errorf("failed to check course title: %w", err), domain.EntityCourse, "")
	}
	return count > 0, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error) {
	updates := map[string]interface{}{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Price != nil {
		updates["price"] = *update.Price
	}
	if update.VideoCount != nil {
		updates["video_count"] = *update.VideoCount
	}
	if update.Duration != nil {
		updates["duration"] = *update.Duration
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.Course{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, utils.TranslateDBError(res.Error, domain.EntityCourse, domain.MsgCourseTitleTaken)
		}
		if res.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(domain.EntityCourse)
		}
	}
	return r.GetCourseByID(ctx, id)
}

// IncrementViewCount bumps view_count without touching updated_at.
func (r *courseRepository) IncrementViewCount(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityCourse, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityCourse)
	}
	return nil
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id)
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityCourse, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityCourse)
	}
	return nil
}

func attachCourseCount(c *domain.Course) {
	c.Count = &domain.CourseCount{Enrollments: c.EnrollmentCount, Tests: c.TestCount}
}
