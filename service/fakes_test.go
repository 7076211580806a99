package service

import (
	"context"
	"fmt"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

// In-memory repositories. Each records the calls it received so tests can
// assert orchestration order.

type callLog []string

func (l *callLog) add(format string, args ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

type fakeUserRepo struct {
	calls *callLog
	users map[string]*domain.User
	seq   int
}

func newFakeUserRepo(calls *callLog) *fakeUserRepo {
	return &fakeUserRepo{calls: calls, users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	r.calls.add("user.create")
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context, _ domain.UserFilter) ([]domain.User, int64, error) {
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	r.calls.add("user.get")
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityUser)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError(domain.EntityUser)
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	r.calls.add("user.existsByEmail")
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	r.calls.add("user.update")
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityUser)
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		u.PhoneNumber = *update.PhoneNumber
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Password != nil {
		u.Password = *update.Password
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id string) error {
	r.calls.add("user.delete")
	delete(r.users, id)
	return nil
}

type fakeCourseRepo struct {
	calls   *callLog
	courses map[string]*domain.Course
	seq     int
}

func newFakeCourseRepo(calls *callLog) *fakeCourseRepo {
	return &fakeCourseRepo{calls: calls, courses: map[string]*domain.Course{}}
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, course *domain.Course) error {
	r.calls.add("course.create")
	r.seq++
	course.ID = fmt.Sprintf("course-%d", r.seq)
	course.ViewCount = 0
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id string) (*domain.Course, error) {
	r.calls.add("course.get")
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityCourse)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) GetAllCourses(_ context.Context, _ domain.CourseFilter) ([]domain.Course, int64, error) {
	out := []domain.Course{}
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCourseRepo) GetPopularCourses(_ context.Context, limit int) ([]domain.Course, error) {
	r.calls.add("course.popular(%d)", limit)
	return []domain.Course{}, nil
}

func (r *fakeCourseRepo) ExistsByTitle(_ context.Context, title, instructorID, excludeID string) (bool, error) {
	r.calls.add("course.existsByTitle")
	for _, c := range r.courses {
		if c.Title == title && c.InstructorID == instructorID && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCourseRepo) UpdateCourse(_ context.Context, id string, update domain.CourseUpdate) (*domain.Course, error) {
	r.calls.add("course.update")
	c := r.courses[id]
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.Price != nil {
		c.Price = *update.Price
	}
	if update.VideoCount != nil {
		c.VideoCount = *update.VideoCount
	}
	if update.Duration != nil {
		c.Duration = *update.Duration
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) IncrementViewCount(_ context.Context, id string) error {
	r.calls.add("course.incrementViews")
	c, ok := r.courses[id]
	if !ok {
		return domain.NewNotFoundError(domain.EntityCourse)
	}
	c.ViewCount++
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(_ context.Context, id string) error {
	r.calls.add("course.delete")
	delete(r.courses, id)
	return nil
}

type fakeEnrollmentRepo struct {
	calls       *callLog
	enrollments map[string]*domain.Enrollment
	seq         int
	createErr   error
}

func newFakeEnrollmentRepo(calls *callLog) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{calls: calls, enrollments: map[string]*domain.Enrollment{}}
}

func (r *fakeEnrollmentRepo) CreateEnrollment(_ context.Context, e *domain.Enrollment) error {
	r.calls.add("enrollment.create")
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	e.ID = fmt.Sprintf("enrollment-%d", r.seq)
	cp := *e
	r.enrollments[e.ID] = &cp
	return nil
}

func (r *fakeEnrollmentRepo) GetEnrollmentByID(_ context.Context, id string) (*domain.Enrollment, error) {
	r.calls.add("enrollment.get")
	e, ok := r.enrollments[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityEnrollment)
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEnrollmentRepo) GetByUserAndCourse(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	r.calls.add("enrollment.getByUserAndCourse")
	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEnrollmentRepo) GetAllEnrollments(_ context.Context, _ domain.EnrollmentFilter) ([]domain.Enrollment, int64, error) {
	out := []domain.Enrollment{}
	for _, e := range r.enrollments {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnrollmentRepo) UpdateEnrollment(_ context.Context, id string, update domain.EnrollmentUpdate) (*domain.Enrollment, error) {
	r.calls.add("enrollment.update")
	e := r.enrollments[id]
	e.Progress = *update.Progress
	cp := *e
	return &cp, nil
}

func (r *fakeEnrollmentRepo) DeleteEnrollment(_ context.Context, id string) error {
	r.calls.add("enrollment.delete")
	delete(r.enrollments, id)
	return nil
}

type fakeTestRepo struct {
	calls *callLog
	tests map[string]*domain.Test
	seq   int
}

func newFakeTestRepo(calls *callLog) *fakeTestRepo {
	return &fakeTestRepo{calls: calls, tests: map[string]*domain.Test{}}
}

func (r *fakeTestRepo) CreateTest(_ context.Context, test *domain.Test) error {
	r.calls.add("test.create")
	r.seq++
	test.ID = fmt.Sprintf("test-%d", r.seq)
	cp := *test
	r.tests[test.ID] = &cp
	return nil
}

func (r *fakeTestRepo) GetTestByID(_ context.Context, id string) (*domain.Test, error) {
	r.calls.add("test.get")
	t, ok := r.tests[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityTest)
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTestRepo) GetAllTests(_ context.Context, _ domain.TestFilter) ([]domain.Test, int64, error) {
	out := []domain.Test{}
	for _, t := range r.tests {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTestRepo) GetTestsByCourse(_ context.Context, courseID string) ([]domain.Test, error) {
	out := []domain.Test{}
	for _, t := range r.tests {
		if t.CourseID == courseID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) UpdateTest(_ context.Context, id string, update domain.TestUpdate) (*domain.Test, error) {
	r.calls.add("test.update")
	t := r.tests[id]
	if update.Title != nil {
		t.Title = *update.Title
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTestRepo) DeleteTest(_ context.Context, id string) error {
	r.calls.add("test.delete")
	delete(r.tests, id)
	return nil
}

type fakeTestResultRepo struct {
	calls   *callLog
	results map[string]*domain.TestResult
	seq     int
}

func newFakeTestResultRepo(calls *callLog) *fakeTestResultRepo {
	return &fakeTestResultRepo{calls: calls, results: map[string]*domain.TestResult{}}
}

func (r *fakeTestResultRepo) CreateTestResult(_ context.Context, result *domain.TestResult) error {
	r.calls.add("result.create")
	r.seq++
	result.ID = fmt.Sprintf("result-%d", r.seq)
	cp := *result
	r.results[result.ID] = &cp
	return nil
}

func (r *fakeTestResultRepo) GetTestResultByID(_ context.Context, id string) (*domain.TestResult, error) {
	r.calls.add("result.get")
	res, ok := r.results[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityTestResult)
	}
	cp := *res
	return &cp, nil
}

func (r *fakeTestResultRepo) GetByUserAndTest(_ context.Context, userID, testID string) (*domain.TestResult, error) {
	r.calls.add("result.getByUserAndTest")
	for _, res := range r.results {
		if res.UserID == userID && res.TestID == testID {
			cp := *res
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTestResultRepo) GetAllTestResults(_ context.Context, _ domain.TestResultFilter) ([]domain.TestResult, int64, error) {
	out := []domain.TestResult{}
	for _, res := range r.results {
		out = append(out, *res)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTestResultRepo) UpdateTestResult(_ context.Context, id string, update domain.TestResultUpdate) (*domain.TestResult, error) {
	r.calls.add("result.update")
	res := r.results[id]
	res.Score = *update.Score
	cp := *res
	return &cp, nil
}

func (r *fakeTestResultRepo) DeleteTestResult(_ context.Context, id string) error {
	r.calls.add("result.delete")
	delete(r.results, id)
	return nil
}

func equalCalls(got callLog, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
