// Package validate holds the save-time checks run on a candidate event.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"weekplanner/internal/model"
)

// Blocking conditions reported back to the user. Overlap is not among
// them; it is advisory and handled by the schedule package.
var (
	ErrMissingTitle     = errors.New("event title is required")
	ErrInvalidDay       = errors.New("unknown weekday")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidTimeRange = errors.New("event must start before it ends")
	ErrInvalidColor     = errors.New("color must be a hex token")
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Title must survive trimming, not just be non-empty.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return v
}

// Event checks a candidate before it is committed. The first failing
// condition is returned; a nil result means the event may be stored.
func Event(e model.Event) error {
	if err := validate.Struct(e); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return conditionFor(fieldErrs[0])
		}
		return err
	}
	// Zero-padded fixed-width strings, so lexicographic equals chronological.
	if e.Start >= e.End {
		return ErrInvalidTimeRange
	}
	return nil
}

func conditionFor(fe validator.FieldError) error {
	switch fe.Field() {
	case "Title":
		return ErrMissingTitle
	case "Day":
		return ErrInvalidDay
	case "Start", "End":
		return ErrInvalidTime
	case "Color":
		return ErrInvalidColor
	default:
		return fe
	}
}
