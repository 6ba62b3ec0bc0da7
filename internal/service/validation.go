package service

import (
	"regexp"
	"strings"
	"time"

	"healthcare-backend/internal/apperr"
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// validatePhone applies both phone rules: after stripping '+', '-' and spaces
// the value must be all digits, and the raw value must match phonePattern.
func validatePhone(phone string) error {
	stripped := strings.NewReplacer("+", "", "-", "", " ", "").Replace(phone)
	if stripped == "" {
		return apperr.Validation("phone", "Phone number must contain only digits, +, -, and spaces")
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return apperr.Validation("phone", "Phone number must contain only digits, +, -, and spaces")
		}
	}
	if !phonePattern.MatchString(phone) {
		return apperr.Validation("phone", "Phone number must be entered in format: '+999999999'. Up to 15 digits allowed.")
	}
	return nil
}

func validateDateOfBirth(dob string) error {
	if _, err := time.Parse("2006-01-02", dob); err != nil {
		return apperr.Validation("date_of_birth", "Date of birth must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

func validateYearsOfExperience(years int) error {
	if years < 0 {
		return apperr.Validation("years_of_experience", "Years of experience cannot be negative")
	}
	if years > 50 {
		return apperr.Validation("years_of_experience", "Years of experience seems unrealistic")
	}
	return nil
}

func validateConsultationFee(fee float64) error {
	if fee < 0 {
		return apperr.Validation("consultation_fee", "Consultation fee cannot be negative")
	}
	return nil
}

// validateTimeOfDay accepts HH:MM:SS or HH:MM clock values.
func validateTimeOfDay(field, value string) error {
	if _, err := time.Parse("15:04:05", value); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04", value); err == nil {
		return nil
	}
	return apperr.Validation(field, "Must be a valid time of day in HH:MM[:SS] format")
}
