package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordChangeInvalidInput = errors.New("password change invalid input")
	ErrPasswordCurrentInvalid     = errors.New("current password invalid")
	ErrPasswordMustDiffer         = errors.New("new password must differ")
)

// ValidatePasswordChange checks the current password against passwordHash
// and the new one against the strength policy.
func ValidatePasswordChange(passwordHash string, currentPassword string, newPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordChangeInvalidInput
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(currentPassword)) != nil {
		return ErrPasswordCurrentInvalid
	}
	if currentPassword == newPassword {
		return ErrPasswordMustDiffer
	}
	return ValidatePasswordStrength(newPassword)
}
