package repository

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/gorm"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", selectUserBrief).
		Preload("Course", selectCourseBrief).
		Preload("Course.Instructor", selectUserName)
}

func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	err := r.db.WithContext(ctx).Omit("User", "Course").Create(enrollment).Error
	if err != nil {
		return utils.TranslateDBError(err, domain.EntityEnrollment, domain.MsgAlreadyEnrolled)
	}
	return nil
}

func (r *enrollmentRepository) GetEnrollmentByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	if err := r.db.WithContext(ctx).Scopes(r.withRelations).First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError(err, domain.EntityEnrollment, "")
	}
	return &enrollment, nil
}

// GetByUserAndCourse returns nil, nil when the pair is not enrolled.
func (r *enrollmentRepository) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Limit(1).
		Find(&enrollments).Error
	if err != nil {
		return nil, utils.TranslateDBError(fmt.Errorf("failed to check enrollment: %w", err), domain.EntityEnrollment, "")
	}
	if len(enrollments) == 0 {
		return nil, nil
	}
	return &enrollments[0], nil
}

func (r *enrollmentRepository) GetAllEnrollments(ctx context.Context, filter domain.EnrollmentFilter) ([]domain.Enrollment, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Enrollment{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CourseID != "" {
		query = query.Where("course_id = ?", filter.CourseID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to count enrollments: %w", err), domain.EntityEnrollment, "")
	}

	enrollments := []domain.Enrollment{}
	err := query.Scopes(r.withRelations, paginate(filter.Pagination)).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, 0, utils.TranslateDBError(fmt.Errorf("failed to fetch enrollments: %w", err), domain.EntityEnrollment, "")
	}
	return enrollments, total, nil
}

func (r *enrollmentRepository) UpdateEnrollment(ctx context.Context, id string, update domain.EnrollmentUpdate) (*domain.Enrollment, error) {
	if update.Progress != nil {
		res := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
			Where("id = ?", id).
			Update("progress", *update.Progress)
		if res.Error != nil {
			return nil, utils.TranslateDBError(res.Error, domain.EntityEnrollment, "")
		}
		if res.RowsAffected == 0 {
			return nil, domain.NewNotFoundError(domain.EntityEnrollment)
		}
	}
	return r.GetEnrollmentByID(ctx, id)
}

func (r *enrollmentRepository) DeleteEnrollment(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Enrollment{}, "id = ?", id)
	if res.Error != nil {
		return utils.TranslateDBError(res.Error, domain.EntityEnrollment, "")
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityEnrollment)
	}
	return nil
}
