package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the rules an entity violated
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Messages)
}

// NewValidationError builds a ValidationError from readable messages
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

func instance() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("username", UsernameValidation); err != nil {
			validateErr = fmt.Errorf("failed to register custom validator: %w", err)
			return
		}
		if err := v.RegisterValidation("domainname", DomainNameValidation); err != nil {
			validateErr = fmt.Errorf("failed to register custom validator: %w", err)
			return
		}
		validate = v
	})
	return validate, validateErr
}

// ValidateStruct runs the struct tags of s, including the custom
// "username" and "domainname" tags, and reports each failure as
// "Field: <name>, Tag: <tag>".
func ValidateStruct(s interface{}) error {
	v, err := instance()
	if err != nil {
		return err
	}

	err = v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return &ValidationError{Messages: messages}
	}
	return fmt.Errorf("validation error: %w", err)
}
