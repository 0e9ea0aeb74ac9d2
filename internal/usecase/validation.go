package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/xavierca1/expo-visitors/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegisterVisitorInput(input RegisterVisitorInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	} else if len(input.FullName) > 200 {
		errors = append(errors, ValidationError{"full_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if strings.TrimSpace(input.FollowUpDate) != "" && !isValidDate(input.FollowUpDate) {
		errors = append(errors, ValidationError{"follow_up_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func ValidateRegisterEmployeeInput(input RegisterEmployeeInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	} else if len(input.Password) < 6 {
		errors = append(errors, ValidationError{"password", "must have at least 6 characters"})
	}

	if strings.TrimSpace(input.CompanyCode) == "" {
		errors = append(errors, ValidationError{"company_code", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := entity.NormalizePhone(phone)
	return regexp.MustCompile(`^\d{1,15}$`).MatchString(cleaned)
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

func joinValidationErrors(validationErrors []ValidationError) string {
	msg := "validation failed: "
	for _, e := range validationErrors {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
