package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hasUpperRe    = regexp.MustCompile(`[A-Z]`)
	hasLowerRe    = regexp.MustCompile(`[a-z]`)
	hasDigitRe    = regexp.MustCompile(`[0-9]`)
	hasSpecialRe  = regexp.MustCompile(`[!@#$%^&*()\-_=+{};:,<.>]`)
	minPasswordLn = 8
)

func IsValidEmail(email string) bool { return emailRe.MatchString(email) }

// PasswordStrength 逐项检查，message 汇总所有未达标项
func PasswordStrength(password string) (strong bool, message string) {
	var msgs []string
	if len(password) < minPasswordLn {
		msgs = append(msgs, "Password must be at least 8 characters long.")
	}
	if !hasUpperRe.MatchString(password) {
		msgs = append(msgs, "Password must contain at least one uppercase letter.")
	}
	if !hasLowerRe.MatchString(password) {
		msgs = append(msgs, "Password must contain at least one lowercase letter.")
	}
	if !hasDigitRe.MatchString(password) {
		msgs = append(msgs, "Password must contain at least one digit.")
	}
	if !hasSpecialRe.MatchString(password) {
		msgs = append(msgs, "Password must contain at least one special character.")
	}
	return len(msgs) == 0, strings.Join(msgs, " ")
}

func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
