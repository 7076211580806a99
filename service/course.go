package service

import (
	"context"
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type courseService struct {
	repo     domain.CourseRepository
	userRepo domain.UserRepository
}

func NewCourseService(repo domain.CourseRepository, userRepo domain.UserRepository) domain.CourseUseCase {
	return &courseService{repo: repo, userRepo: userRepo}
}

// CreateCourse checks the instructor exists, then that the instructor has
// no course with the same title, then writes.
func (s *courseService) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course == nil {
		return nil, errors.New("course is nil")
	}

	if _, err := s.userRepo.GetUserByID(ctx, course.InstructorID); err != nil {
		return nil, asNotFound(err, domain.EntityInstructor)
	}

	taken, err := s.repo.ExistsByTitle(ctx, course.Title, course.InstructorID, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflictError(domain.MsgCourseTitleTaken)
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return s.repo.GetCourseByID(ctx, course.ID)
}

// GetCourseByID returns the course as read and then counts the view.
// A missing course is never counted.
func (s *courseService) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) GetAllCourses(ctx context.Context, filter domain.CourseFilter) (*domain.CourseList, error) {
	courses, total, err := s.repo.GetAllCourses(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.CourseList{
		Courses:  courses,
		PageMeta: domain.NewPageMeta(total, filter.Pagination),
	}, nil
}

func (s *courseService) GetPopularCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "Limit must be a non-negative integer")
	}
	return s.repo.GetPopularCourses(ctx, limit)
}

func (s *courseService) UpdateCourse(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != course.Title {
		taken, err := s.repo.ExistsByTitle(ctx, *update.Title, course.InstructorID, course.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError(domain.MsgCourseTitleTaken)
		}
	}

	if update.IsEmpty() {
		return course, nil
	}
	return s.repo.UpdateCourse(ctx, id, update)
}

func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.repo.GetCourseByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCourse(ctx, id)
}
