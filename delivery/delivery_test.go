package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/uchkunrakhimow/edtech-platform/config"
	"github.com/uchkunrakhimow/edtech-platform/delivery"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/repository"
	"github.com/uchkunrakhimow/edtech-platform/service"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	adminEmail    = "admin@example.com"
	adminPassword = "admin-secret"
)

var registerOnce sync.Once

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []domain.FieldError `json:"errors"`
}

type testServer struct {
	t     *testing.T
	app   *gin.Engine
	jwt   *utils.JWTManager
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger("test")
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			utils.RegisterCustomValidations(v)
		}
	})

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), &gorm.Config{
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
	seed := config.AdminSeed{Email: adminEmail, Password: adminPassword, Name: "Admin", Phone: "1234567"}
	if err := config.SeedAdmin(context.Background(), db, seed); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	jwtManager := utils.NewJWTManager(testSecret, time.Hour)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	testRepo := repository.NewTestRepository(db)

	app := gin.New()
	delivery.NewHealthHandler(app, sqlDB)
	delivery.NewAuthHandler(app, service.NewAuthService(userRepo, jwtManager))

	api := app.Group("/api", config.AuthMiddleware(jwtManager))
	delivery.NewUserHandler(api, service.NewUserService(userRepo))
	delivery.NewCourseHandler(api, service.NewCourseService(courseRepo, userRepo))
	delivery.NewEnrollmentHandler(api, service.NewEnrollmentService(repository.NewEnrollmentRepository(db)))
	delivery.NewTestHandler(api, service.NewTestService(testRepo))
	delivery.NewTestResultHandler(api, service.NewTestResultService(repository.NewTestResultRepository(db), userRepo, testRepo))

	s := &testServer{t: t, app: app, jwt: jwtManager}
	s.token = s.login(adminEmail, adminPassword)
	return s
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	return s.doWithToken(method, path, body, s.token)
}

func (s *testServer) doWithToken(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.app.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, env
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	w, env := s.doWithToken(http.MethodPost, "/auth/login", gin.H{"email": email, "password": password}, "")
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: got=%d body=%s", w.Code, w.Body.String())
	}
	var tokens struct {
		AccessToken string `json:"accessToken"`
	}
	mustDecode(s.t, env.Data, &tokens)
	return tokens.AccessToken
}

func mustDecode(t *testing.T, raw json.RawMessage, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, string(raw))
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status: got=%d want=%d body=%s", w.Code, want, w.Body.String())
	}
}

func (s *testServer) createUser(name, email, role string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/user", gin.H{
		"name": name, "email": email, "phoneNumber": "998901234567", "password": "secret1", "role": role,
	})
	expectStatus(s.t, w, http.StatusCreated)
	var u struct {
		ID string `json:"id"`
	}
	mustDecode(s.t, env.Data, &u)
	return u.ID
}

func (s *testServer) createCourse(title, instructorID string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/course", gin.H{
		"title": title, "description": "A course about " + title, "price": 19.5,
		"videoCount": 4, "duration": 60, "instructorId": instructorID,
	})
	expectStatus(s.t, w, http.StatusCreated)
	var c struct {
		ID string `json:"id"`
	}
	mustDecode(s.t, env.Data, &c)
	return c.ID
}

func (s *testServer) createTest(title, courseID string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/test", gin.H{"title": title, "courseId": courseID})
	expectStatus(s.t, w, http.StatusCreated)
	var test struct {
		ID string `json:"id"`
	}
	mustDecode(s.t, env.Data, &test)
	return test.ID
}
