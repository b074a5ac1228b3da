package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ijuruhub/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
	}
}

// Validate checks a booking request before it enters the ledger. The date may
// be today but never earlier.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if !model.IsValidSpaceType(booking.SpaceType) {
		return ValidationErrors{
			ValidationError{
				Field:   "SpaceType",
				Message: fmt.Sprintf("spaceType must be one of: %s", strings.Join(model.SpaceTypes, ", ")),
			},
		}
	}

	today := startOfDay(time.Now().UTC())
	if booking.Date.Before(today) {
		return ValidationErrors{
			ValidationError{
				Field:   "Date",
				Message: "Cannot book for past dates",
			},
		}
	}

	return nil
}

// ValidateUpdate checks a partial update. An empty update is rejected so a
// no-op PATCH cannot masquerade as success.
func (v *BookingValidator) ValidateUpdate(update *model.BookingUpdate) error {
	if update == nil || update.IsZero() {
		return ValidationErrors{
			ValidationError{
				Field:   "Update",
				Message: "at least one field must be provided",
			},
		}
	}

	var validationErrors ValidationErrors

	if update.Status != "" && !model.IsValidBookingStatus(update.Status) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "Status",
			Message: "status must be one of: pending, confirmed, completed, cancelled",
		})
	}
	if update.PaymentStatus != "" && !model.IsValidPaymentStatus(update.PaymentStatus) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "PaymentStatus",
			Message: "paymentStatus must be one of: pending, paid, failed",
		})
	}
	if update.Duration != nil && *update.Duration < 1 {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "Duration",
			Message: "duration must be at least 1",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
