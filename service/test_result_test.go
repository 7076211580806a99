package service

import (
	"context"
	"errors"
	"testing"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type resultFixture struct {
	calls   *callLog
	results *fakeTestResultRepo
	svc     domain.TestResultUseCase
}

func newResultFixture() *resultFixture {
	calls := &callLog{}
	users := newFakeUserRepo(calls)
	tests := newFakeTestRepo(calls)
	results := newFakeTestResultRepo(calls)
	users.users["u1"] = &domain.User{ID: "u1", Name: "Ada"}
	tests.tests["t1"] = &domain.Test{ID: "t1", Title: "Quiz", CourseID: "c1"}
	return &resultFixture{calls: calls, results: results, svc: NewTestResultService(results, users, tests)}
}

func TestCreateTestResultOrchestration(t *testing.T) {
	f := newResultFixture()

	res, err := f.svc.CreateTestResult(context.Background(), &domain.TestResult{UserID: "u1", TestID: "t1", Score: 88})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 88 {
		t.Fatalf("score: got=%v", res.Score)
	}
	if !equalCalls(*f.calls, "user.get", "test.get", "result.getByUserAndTest", "result.create", "result.get") {
		t.Fatalf("calls: got=%v", *f.calls)
	}
}

func TestCreateTestResultMissingReferences(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		testID string
		want   string
		calls  []string
	}{
		{"unknown user", "ghost", "t1", "User not found", []string{"user.get"}},
		{"unknown test", "u1", "ghost", "Test not found", []string{"user.get", "test.get"}},
		{"both unknown reports user", "ghost", "ghost", "User not found", []string{"user.get"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newResultFixture()
			_, err := f.svc.CreateTestResult(context.Background(), &domain.TestResult{UserID: tc.userID, TestID: tc.testID, Score: 50})
			if err == nil || err.Error() != tc.want {
				t.Fatalf("got=%v want=%s", err, tc.want)
			}
			if !equalCalls(*f.calls, tc.calls...) {
				t.Fatalf("calls: got=%v want=%v", *f.calls, tc.calls)
			}
		})
	}
}

func TestCreateTestResultDuplicate(t *testing.T) {
	f := newResultFixture()
	if _, err := f.svc.CreateTestResult(context.Background(), &domain.TestResult{UserID: "u1", TestID: "t1", Score: 10}); err != nil {
		t.Fatalf("first: %v", err)
	}

	_, err := f.svc.CreateTestResult(context.Background(), &domain.TestResult{UserID: "u1", TestID: "t1", Score: 20})
	var cf *domain.ConflictError
	if !errors.As(err, &cf) || cf.Message != domain.MsgTestResultExists {
		t.Fatalf("got=%v", err)
	}
}

func TestUpdateAndDeleteTestResult(t *testing.T) {
	f := newResultFixture()
	res, _ := f.svc.CreateTestResult(context.Background(), &domain.TestResult{UserID: "u1", TestID: "t1", Score: 10})

	score := 99.0
	updated, err := f.svc.UpdateTestResult(context.Background(), res.ID, domain.TestResultUpdate{Score: &score})
	if err != nil || updated.Score != 99 {
		t.Fatalf("update: got=%v err=%v", updated, err)
	}

	if err := f.svc.DeleteTestResult(context.Background(), res.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *domain.NotFoundError
	if _, err := f.svc.GetTestResultByID(context.Background(), res.ID); !errors.As(err, &nf) {
		t.Fatalf("get after delete: got=%v", err)
	}
}
