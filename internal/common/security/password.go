package security

import (
	"unicode"

	"calendo/internal/common"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordPolicy enforces the registration policy: minimum length 6
// and at least one digit. No uppercase or special-character requirement.
func ValidatePasswordPolicy(password string) common.ValidationErrors {
	var errs common.ValidationErrors
	if len(password) < 6 {
		errs = append(errs, "Passwords must be at least 6 characters.")
	}
	hasDigit := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		errs = append(errs, "Passwords must have at least one digit ('0'-'9').")
	}
	return errs
}
