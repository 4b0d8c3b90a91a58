package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.Status != "" && !input.Status.IsValid() {
		errors = append(errors, ValidationError{"status", "must be new, in_progress or completed"})
	}

	if input.Source != "" && !input.Source.IsValid() {
		errors = append(errors, ValidationError{"source", "must be website, social, call or other"})
	}

	return errors
}

func ValidateInteractionMessage(message string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	} else if len(message) > 4000 {
		errors = append(errors, ValidationError{"message", "must not exceed 4000 characters"})
	}

	return errors
}

func ValidateLoginInput(email, password string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	}

	return errors
}

func ValidateInstagramInput(username string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(username) == "" {
		errors = append(errors, ValidationError{"username", "is required"})
	}

	return errors
}

func ValidateTag(tag string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(tag) == "" {
		errors = append(errors, ValidationError{"tag", "is required"})
	}

	return errors
}

// statusFilterValid aceita "all" ou um dos três status do pipeline
func statusFilterValid(filter StatusFilter) bool {
	return filter == StatusFilterAll || entity.LeadStatus(filter).IsValid()
}
