// Package validation checks request payloads before they reach business logic.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"contact_api/internal/model"

	"github.com/go-playground/validator/v10"
)

// Error lists every violated field of a rejected payload, keyed by the
// field's JSON name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= limit
	})
	return v
}

// ValidateRegister checks a registration payload
func ValidateRegister(req *model.RegisterUserRequest) error {
	return check(req)
}

// ValidateLogin checks a login payload
func ValidateLogin(req *model.LoginUserRequest) error {
	return check(req)
}

// ValidateUpdateUser checks a profile update payload
func ValidateUpdateUser(req *model.UpdateUserRequest) error {
	return check(req)
}

// ValidateContact normalizes empty optional fields to nil and checks the payload
func ValidateContact(req *model.ContactRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		req.FirstName = ""
	}
	req.LastName = nilIfBlank(req.LastName)
	req.Email = nilIfBlank(req.Email)
	req.Phone = nilIfBlank(req.Phone)
	return check(req)
}

// ValidateSearch applies paging defaults and checks the query
func ValidateSearch(req *model.SearchContactRequest) error {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Size == 0 {
		req.Size = 10
	}
	return check(req)
}

func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	verr := &Error{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := verr.Fields[fe.Field()]; !seen {
			verr.Fields[fe.Field()] = message(fe)
		}
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func nilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
