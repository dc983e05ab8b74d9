package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/fitcore/users-service/internal/domain/errors"
)

// Formatos compartilhados entre Student e Employee
var (
	emailRegexp = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)
	cpfRegexp   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phoneRegexp = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidArgument("name cannot be blank")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegexp.MatchString(email) {
		return errors.NewInvalidArgument("invalid email format")
	}
	return nil
}

func validateCpf(cpf string) error {
	if !cpfRegexp.MatchString(cpf) {
		return errors.NewInvalidArgument("invalid CPF format")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return errors.NewInvalidArgument("invalid phone format")
	}
	return nil
}

// validateMinimumAge exige que birthDate seja estritamente anterior a hoje menos years anos
func validateMinimumAge(birthDate time.Time, years int, message string) error {
	cutoff := time.Now().AddDate(-years, 0, 0)
	if !birthDate.Before(cutoff) {
		return errors.NewInvalidArgument(message)
	}
	return nil
}
