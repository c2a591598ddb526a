package errors

import "github.com/markbaxman/WightCars-sub000/constant"

// FieldError names one offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	fields  []FieldError
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// ErrorFields returns the field-level details of a validation failure;
// empty for every other error type.
func (c CustomError) ErrorFields() []FieldError {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrValidation carrying the offending
// fields.
func SetValidationError(fields ...FieldError) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}
