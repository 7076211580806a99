package domain

import (
	"fmt"
	"strings"
)

// FieldError is a single violated constraint on an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// MalformedRequestError is returned when a body or query cannot be decoded at all.
type MalformedRequestError struct {
	Err error
}

func (e *MalformedRequestError) Error() string {
	if e.Err == nil {
		return "malformed request"
	}
	return "malformed request: " + e.Err.Error()
}

func (e *MalformedRequestError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	if e.Entity == "" {
		return "Record not found"
	}
	return e.Entity + " not found"
}

func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Duplicate value, please use another"
}

func (e *ConflictError) Unwrap() error { return e.Err }

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// UnknownError wraps a store failure that has no better classification.
type UnknownError struct {
	Op  string
	Err error
}

func (e *UnknownError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("unexpected store failure: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnknownError) Unwrap() error { return e.Err }

// UnauthorizedError is returned for failed logins.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "invalid credentials"
	}
	return e.Message
}

const (
	MsgCourseTitleTaken  = "Course with this title already exists for this instructor"
	MsgAlreadyEnrolled   = "User is already enrolled in this course"
	MsgTestResultExists  = "Test result already exists for this user and test"
	MsgEmailAlreadyTaken = "Email already exists"
)
