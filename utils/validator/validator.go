package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"

	cerr "github.com/markbaxman/WightCars-sub000/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors extracts field-level details from a validator error so the
// response can name the offending fields.
func FieldErrors(err error) []cerr.FieldError {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]cerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, cerr.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: tagMessage(fe),
		})
	}
	return out
}

func tagMessage(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
