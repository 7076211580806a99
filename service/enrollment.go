package service

import (
	"context"
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type enrollmentService struct {
	repo domain.EnrollmentRepository
}

func NewEnrollmentService(repo domain.EnrollmentRepository) domain.EnrollmentUseCase {
	return &enrollmentService{repo: repo}
}

// CreateEnrollment rejects a second enrollment of the same user in the same
// course. User and course existence are left to the store's foreign keys.
func (s *enrollmentService) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	if enrollment == nil {
		return nil, errors.New("enrollment is nil")
	}

	existing, err := s.repo.GetByUserAndCourse(ctx, enrollment.UserID, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.MsgAlreadyEnrolled)
	}

	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return s.repo.GetEnrollmentByID(ctx, enrollment.ID)
}

func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.repo.GetEnrollmentByID(ctx, id)
}

func (s *enrollmentService) GetAllEnrollments(ctx context.Context, filter domain.EnrollmentFilter) (*domain.EnrollmentList, error) {
	enrollments, total, err := s.repo.GetAllEnrollments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.EnrollmentList{
		Enrollments: enrollments,
		PageMeta:    domain.NewPageMeta(total, filter.Pagination),
	}, nil
}

func (s *enrollmentService) UpdateEnrollment(ctx context.Context, id string, update domain.EnrollmentUpdate) (*domain.Enrollment, error) {
	enrollment, err := s.repo.GetEnrollmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Progress == nil {
		return enrollment, nil
	}
	return s.repo.UpdateEnrollment(ctx, id, update)
}

func (s *enrollmentService) DeleteEnrollment(ctx context.Context, id string) error {
	if _, err := s.repo.GetEnrollmentByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteEnrollment(ctx, id)
}
