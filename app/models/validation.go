package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a payload that is missing required fields.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidatePost checks that title, author and content are all non-empty.
func ValidatePost(in PostInput) error {
	return check(in, "Missing required fields: title, author, content")
}

// ValidateComment checks that author and content are both non-empty.
func ValidateComment(in CommentInput) error {
	return check(in, "Missing required fields: author, content")
}

// ValidateCommentContent requires the content field to be present. An empty string is allowed.
func ValidateCommentContent(in CommentContent) error {
	if in.Content == nil {
		return &ValidationError{Message: "Missing required field: content", Fields: []string{"content"}}
	}
	return nil
}

func check(payload interface{}, message string) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{Message: message}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, strings.ToLower(fe.Field()))
	}
	return ve
}
