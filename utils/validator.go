package utils

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/uchkunrakhimow/edtech-platform/domain"
)

// RegisterCustomValidations registers custom validation rules and makes
// field errors report the wire name (json or form tag) instead of the Go name.
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(wireFieldName)
	v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterValidation("integer", validateInteger)
	v.RegisterValidation("trimmin", validateTrimmedMin)
}

func wireFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// validateNotBlank rejects strings made only of whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// validateTrimmedMin is min for strings that are stored trimmed: the length
// is counted after surrounding whitespace is removed.
func validateTrimmedMin(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(field.String())) >= n
}

// validateInteger accepts floats without a fractional part.
func validateInteger(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return true
}

// TranslateValidationError converts binding errors into the domain error
// taxonomy. Constraint violations become a ValidationError listing every
// field; undecodable input becomes a MalformedRequestError.
func TranslateValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]domain.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, domain.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return &domain.ValidationError{Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, HumanizeField(lastSegment(field))+" must be of type "+typeErr.Type.String())
	}

	var already *domain.ValidationError
	if errors.As(err, &already) {
		return already
	}

	if errors.Is(err, io.EOF) {
		return &domain.MalformedRequestError{Err: errors.New("request body is empty")}
	}
	return &domain.MalformedRequestError{Err: err}
}

// TranslateJSONBindError translates a ShouldBindJSON error. A JSON type
// mismatch does not stop decoding, so obj is still validated and its
// violations are reported next to the mismatched field.
func TranslateJSONBindError(err error, obj interface{}, sv binding.StructValidator) error {
	translated := TranslateValidationError(err)

	var typeErr *json.UnmarshalTypeError
	if sv == nil || !errors.As(err, &typeErr) {
		return translated
	}
	var mismatch *domain.ValidationError
	if !errors.As(translated, &mismatch) {
		return translated
	}

	var rest *domain.ValidationError
	if !errors.As(TranslateValidationError(sv.ValidateStruct(obj)), &rest) {
		return mismatch
	}
	fields := append([]domain.FieldError{}, mismatch.Fields...)
	for _, f := range rest.Fields {
		if f.Field != mismatch.Fields[0].Field {
			fields = append(fields, f)
		}
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	label := HumanizeField(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "notblank":
		return label + " must not be blank"
	case "email":
		return label + " must be a valid email"
	case "uuid", "uuid4":
		return label + " must be a valid UUID"
	case "number":
		return label + " must be a non-negative integer"
	case "integer":
		return label + " must be an integer"
	case "min", "gte", "trimmin":
		if isString {
			return label + " must be at least " + fe.Param() + " characters"
		}
		return label + " must be at least " + fe.Param()
	case "max", "lte":
		if isString {
			return label + " must be at most " + fe.Param() + " characters"
		}
		return label + " must be at most " + fe.Param()
	case "gt":
		if fe.Param() == "0" {
			return label + " must be a positive integer"
		}
		return label + " must be greater than " + fe.Param()
	case "oneof":
		return label + " must be one of: " + fe.Param()
	default:
		return label + " is invalid"
	}
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
