package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleUser    = "USER"

	EntityUser       = "User"
	EntityInstructor = "Instructor"
	EntityCourse     = "Course"
	EntityEnrollment = "Enrollment"
	EntityTest       = "Test"
	EntityTestResult = "Test result"

	DefaultSkip         = 0
	DefaultTake         = 10
	DefaultPopularLimit = 5
)

type User struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	PhoneNumber string    `gorm:"not null;size:20" json:"phoneNumber"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;size:10;default:'USER'" json:"role"` // ADMIN | TEACHER | USER
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Course struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string    `gorm:"not null;uniqueIndex:idx_course_title_instructor" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	VideoCount   int       `gorm:"not null" json:"videoCount"`
	Duration     int       `gorm:"not null" json:"duration"`
	InstructorID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_course_title_instructor" json:"instructorId"`
	ViewCount    int64     `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Instructor *UserBrief `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE;" json:"instructor,omitempty"`
	Tests      []Test     `gorm:"foreignKey:CourseID" json:"tests,omitempty"`

	EnrollmentCount int64        `gorm:"->;-:migration" json:"-"`
	TestCount       int64        `gorm:"->;-:migration" json:"-"`
	Count           *CourseCount `gorm:"-" json:"_count,omitempty"`
}

type CourseCount struct {
	Enrollments int64 `json:"enrollments"`
	Tests       int64 `json:"tests"`
}

type Enrollment struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID   string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollment_user_course" json:"courseId"`
	Progress   float64   `gorm:"not null;default:0" json:"progress"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolledAt"`

	User   *UserBrief   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Course *CourseBrief `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`
}

type Test struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	CourseID  string    `gorm:"type:uuid;not null;index" json:"courseId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Course  *CourseBrief `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`
	Results []TestResult `gorm:"foreignKey:TestID" json:"results,omitempty"`

	ResultCount int64      `gorm:"->;-:migration" json:"-"`
	Count       *TestCount `gorm:"-" json:"_count,omitempty"`
}

type TestCount struct {
	Results int64 `json:"results"`
}

type TestResult struct {
	ID      string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_test_result_user_test" json:"userId"`
	TestID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_test_result_user_test" json:"testId"`
	Score   float64   `gorm:"not null" json:"score"`
	TakenAt time.Time `gorm:"autoCreateTime" json:"takenAt"`

	User *UserBrief `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Test *TestBrief `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;" json:"test,omitempty"`
}

// Read-only projections of related rows attached to responses.

type UserBrief struct {
	ID    string `gorm:"primaryKey;type:uuid" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Email string `json:"email,omitempty"`
}

func (UserBrief) TableName() string { return "users" }

type CourseBrief struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string     `json:"title"`
	InstructorID string     `gorm:"type:uuid" json:"-"`
	Instructor   *UserBrief `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

func (CourseBrief) TableName() string { return "courses" }

type TestBrief struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Title    string `json:"title"`
	CourseID string `gorm:"type:uuid" json:"courseId"`
}

func (TestBrief) TableName() string { return "tests" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (r *TestResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Test{},
		&Enrollment{},
		&TestResult{},
	}
}
