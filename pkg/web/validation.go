package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetErrorMsg returns a user friendly message for a binding error.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must not exceed " + fe.Param()
	case "len":
		return " must have length " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "oneof":
		return " must be one of " + fe.Param()
	case "currency":
		return " is not supported"
	}

	return " is invalid"
}

// ValidationResponse maps a binding error into the common response envelope,
// accumulating every invalid field instead of reporting only the first one.
func ValidationResponse(err error) Response {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(err)
	}

	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Code:    fmt.Sprintf("validation.msg.%s.%s", fe.Field(), fe.Tag()),
			Message: fe.Field() + GetErrorMsg(fe),
		})
	}

	return Response{
		Error:  fields[0].Message,
		Fields: fields,
	}
}
