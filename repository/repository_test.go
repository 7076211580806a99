package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/uchkunrakhimow/edtech-platform/config"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory sqlite database with foreign keys on
// and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string, createdAt time.Time) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:        name,
		Email:       email,
		PhoneNumber: "998901234567",
		Password:    "hashed",
		Role:        role,
		CreatedAt:   createdAt,
	}
	if err := NewUserRepository(db).CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedCourse(t *testing.T, db *gorm.DB, title, instructorID string, createdAt time.Time) *domain.Course {
	t.Helper()
	c := &domain.Course{
		Title:        title,
		Description:  "Description of " + title,
		Price:        49.99,
		VideoCount:   12,
		Duration:     300,
		InstructorID: instructorID,
		CreatedAt:    createdAt,
	}
	if err := NewCourseRepository(db).CreateCourse(context.Background(), c); err != nil {
		t.Fatalf("seed course %s: %v", title, err)
	}
	return c
}

func seedTest(t *testing.T, db *gorm.DB, title, courseID string, createdAt time.Time) *domain.Test {
	t.Helper()
	test := &domain.Test{Title: title, CourseID: courseID, CreatedAt: createdAt}
	if err := NewTestRepository(db).CreateTest(context.Background(), test); err != nil {
		t.Fatalf("seed test %s: %v", title, err)
	}
	return test
}

func assertNotFound(t *testing.T, err error, want string) {
	t.Helper()
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if want != "" && err.Error() != want {
		t.Fatalf("message: got=%q want=%q", err.Error(), want)
	}
}

func assertConflict(t *testing.T, err error, want string) {
	t.Helper()
	var cf *domain.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError, got %T (%v)", err, err)
	}
	if want != "" && cf.Message != want {
		t.Fatalf("message: got=%q want=%q", cf.Message, want)
	}
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"Go":      "%go%",
		"100%":    `%100\%%`,
		"a_b":     `%a\_b%`,
		`back\sl`: `%back\\sl%`,
	}
	for in, want := range cases {
		if got := likePattern(in); got != want {
			t.Fatalf("likePattern(%q): got=%q want=%q", in, got, want)
		}
	}
}
