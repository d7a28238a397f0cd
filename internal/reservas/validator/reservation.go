package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"reserbot/pkg/logger"
	"reserbot/pkg/model"
)

// Rejection reasons surfaced to the caller. Checks short-circuit in this
// order: presence, name length, date.
const (
	MsgAllFieldsRequired = "all fields are required"
	MsgNameTooShort      = "name must be at least 3 characters"
	MsgPastDate          = "cannot make reservations for past dates"
	MsgInvalidFecha      = "fecha must be a valid date in YYYY-MM-DD format"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ReservationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReservationValidator(log *logger.Logger) *ReservationValidator {
	return &ReservationValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ValidateCreate applies the creation rules and returns the first rejection.
// A fecha equal to today is valid; the comparison ignores time-of-day.
func (v *ReservationValidator) ValidateCreate(res *model.Reservation) *ValidationError {
	if err := v.validate.Struct(res); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return &ValidationError{Field: "", Message: err.Error()}
	}

	return v.validateFecha(res.Fecha)
}

func (v *ReservationValidator) translateValidationErrors(errs validator.ValidationErrors) *ValidationError {
	for _, err := range errs {
		if err.Tag() == "required" {
			return &ValidationError{
				Field:   strings.ToLower(err.Field()),
				Message: MsgAllFieldsRequired,
			}
		}
	}

	for _, err := range errs {
		if err.Field() == "Nombre" && err.Tag() == "min" {
			return &ValidationError{
				Field:   "nombre",
				Message: MsgNameTooShort,
			}
		}
	}

	first := errs[0]
	return &ValidationError{
		Field:   strings.ToLower(first.Field()),
		Message: first.Error(),
	}
}

func (v *ReservationValidator) validateFecha(fecha string) *ValidationError {
	parsed, err := time.ParseInLocation(model.FechaLayout, fecha, time.Local)
	if err != nil {
		return &ValidationError{Field: "fecha", Message: MsgInvalidFecha}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if parsed.Before(today) {
		return &ValidationError{Field: "fecha", Message: MsgPastDate}
	}

	return nil
}
