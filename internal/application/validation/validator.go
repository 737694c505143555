// Package validation evaluates ordered field rules for commands and reports
// every violation at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Patterns shared by the command rule sets
var (
	InternalCodePattern = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
	PhotoNamePattern    = regexp.MustCompile(`^.+\.(jpg|jpeg|png)$`)
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Engine returns the shared validator with the custom tags registered:
//
//	notblank     string contains a non-space character
//	requiredid   string is a non-nil UUID
//	guid         string parses as a UUID in any of the accepted spellings
//	internalcode letters, digits, hyphens and underscores only
//	photoname    file name ending in .jpg, .jpeg or .png
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("requiredid", func(fl validator.FieldLevel) bool {
			id, err := uuid.Parse(strings.TrimSpace(fl.Field().String()))
			if err != nil {
				// Malformed ids are reported by the uuid rule
				return strings.TrimSpace(fl.Field().String()) != ""
			}
			return id != uuid.Nil
		})
		_ = v.RegisterValidation("guid", func(fl validator.FieldLevel) bool {
			_, err := uuid.Parse(strings.TrimSpace(fl.Field().String()))
			return err == nil
		})
		_ = v.RegisterValidation("internalcode", func(fl validator.FieldLevel) bool {
			return InternalCodePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("photoname", func(fl validator.FieldLevel) bool {
			return PhotoNamePattern.MatchString(fl.Field().String())
		})
		engine = v
	})
	return engine
}

// Rules collects violations for one command
type Rules struct {
	errs []shared.FieldError
}

// New creates an empty rule set
func New() *Rules {
	return &Rules{}
}

// Field starts the rules of one field; rules run in the order they are added
func (r *Rules) Field(name string) *FieldRules {
	return &FieldRules{rules: r, name: name}
}

// Err returns a *shared.ValidationError with every violation, or nil
func (r *Rules) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return shared.NewValidationError(r.errs...)
}

// Violations returns the violations collected so far
func (r *Rules) Violations() []shared.FieldError {
	return r.errs
}

func (r *Rules) add(field, message string) {
	r.errs = append(r.errs, shared.FieldError{Field: field, Message: message})
}

// FieldRules is a fluent builder for the rules of a single field
type FieldRules struct {
	rules *Rules
	name  string
}

// Tag checks value against a go-playground validator tag expression
func (f *FieldRules) Tag(value any, tag, message string) *FieldRules {
	if err := Engine().Var(value, tag); err != nil {
		f.rules.add(f.name, message)
	}
	return f
}

// NotBlank requires a string with at least one non-space character
func (f *FieldRules) NotBlank(value, message string) *FieldRules {
	return f.Tag(value, "notblank", message)
}

// MinLength requires at least n characters
func (f *FieldRules) MinLength(value string, n int, message string) *FieldRules {
	return f.Tag(value, fmt.Sprintf("min=%d", n), message)
}

// MaxLength allows at most n characters
func (f *FieldRules) MaxLength(value string, n int, message string) *FieldRules {
	return f.Tag(value, fmt.Sprintf("max=%d", n), message)
}

// Length requires between min and max characters
func (f *FieldRules) Length(value string, min, max int, message string) *FieldRules {
	return f.Tag(value, fmt.Sprintf("min=%d,max=%d", min, max), message)
}

// Matches requires the value to match one of the registered pattern tags
func (f *FieldRules) Matches(value, patternTag, message string) *FieldRules {
	return f.Tag(value, patternTag, message)
}

// RequiredID requires a non-nil UUID string
func (f *FieldRules) RequiredID(value, message string) *FieldRules {
	return f.Tag(value, "requiredid", message)
}

// UUID requires an empty or well-formed UUID string
func (f *FieldRules) UUID(value, message string) *FieldRules {
	return f.Tag(value, "omitempty,guid", message)
}

// GreaterThan requires value > bound
func (f *FieldRules) GreaterThan(value, bound decimal.Decimal, message string) *FieldRules {
	return f.Must(value.GreaterThan(bound), message)
}

// GreaterOrEqual requires value >= bound
func (f *FieldRules) GreaterOrEqual(value, bound decimal.Decimal, message string) *FieldRules {
	return f.Must(value.GreaterThanOrEqual(bound), message)
}

// MaxScale allows at most places digits after the decimal point
func (f *FieldRules) MaxScale(value decimal.Decimal, places int32, message string) *FieldRules {
	return f.Must(value.Equal(value.Truncate(places)), message)
}

// NotZeroTime requires a set time
func (f *FieldRules) NotZeroTime(value time.Time, message string) *FieldRules {
	return f.Must(!value.IsZero(), message)
}

// NotAfter requires value <= limit
func (f *FieldRules) NotAfter(value, limit time.Time, message string) *FieldRules {
	return f.Must(!value.After(limit), message)
}

// MaxBytes allows at most n bytes
func (f *FieldRules) MaxBytes(data []byte, n int, message string) *FieldRules {
	return f.Must(len(data) <= n, message)
}

// Must adds message when ok is false
func (f *FieldRules) Must(ok bool, message string) *FieldRules {
	if !ok {
		f.rules.add(f.name, message)
	}
	return f
}
