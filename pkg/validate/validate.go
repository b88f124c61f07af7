package validate

import (
	"regexp"
	"strings"
	"time"
)

// ValidationError is a local pre-flight failure. It blocks the gateway
// call entirely; Message is rendered to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSearch checks the search form. Endpoints are compared by
// resolved name, not raw id. The date is compared day-granular against
// the system clock.
func ValidateSearch(fromName, toName, dateStr string) error {
	if fromName == "" || toName == "" || dateStr == "" {
		return &ValidationError{Message: "Vyplňte všechna pole pro vyhledávání"}
	}
	if fromName == toName {
		return &ValidationError{Message: "Nástupní a výstupní místo musí být různé"}
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return &ValidationError{Message: "Neplatný formát data (očekáváno RRRR-MM-DD)"}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return &ValidationError{Message: "Datum cesty nemůže být v minulosti"}
	}
	return nil
}

func ValidatePassenger(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Message: "Jméno je povinné"}
	}
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Message: "Email je povinný"}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Message: "Neplatný formát emailu"}
	}
	return nil
}

// ValidateAge checks the optional age field; zero means unset.
func ValidateAge(age int) error {
	if age < 0 || age > 120 {
		return &ValidationError{Message: "Věk musí být mezi 0 a 120"}
	}
	return nil
}
