package domain

import "context"

type EnrollmentFilter struct {
	Pagination
	UserID   string
	CourseID string
}

type EnrollmentList struct {
	Enrollments []Enrollment `json:"enrollments"`
	PageMeta
}

type EnrollmentUpdate struct {
	Progress *float64
}

type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
	GetEnrollmentByID(ctx context.Context, id string) (*Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*Enrollment, error)
	GetAllEnrollments(ctx context.Context, filter EnrollmentFilter) ([]Enrollment, int64, error)
	UpdateEnrollment(ctx context.Context, id string, update EnrollmentUpdate) (*Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}

type EnrollmentUseCase interface {
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id string) (*Enrollment, error)
	GetAllEnrollments(ctx context.Context, filter EnrollmentFilter) (*EnrollmentList, error)
	UpdateEnrollment(ctx context.Context, id string, update EnrollmentUpdate) (*Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}
