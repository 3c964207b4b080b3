package service

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// PasswordPolicy is applied to new passwords chosen through changePassword.
type PasswordPolicy struct {
	MinLength int
	Symbols   string
}

var DefaultPasswordPolicy = PasswordPolicy{
	MinLength: 12,
	Symbols:   "!@#$%^&*",
}

// PolicyError lists every rule a password failed.
type PolicyError struct {
	Violations []string
}

func (e *PolicyError) Error() string {
	return "password must " + strings.Join(e.Violations, ", ")
}

// Check returns a *PolicyError when pw breaks any rule.
func (p PasswordPolicy) Check(pw string) error {
	var digit, symbol, lower, upper bool
	for _, r := range pw {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune(p.Symbols, r):
			symbol = true
		}
	}

	var v []string
	if utf8.RuneCountInString(pw) < p.MinLength {
		v = append(v, "be at least "+strconv.Itoa(p.MinLength)+" characters")
	}
	if !digit {
		v = append(v, "contain a digit")
	}
	if !symbol {
		v = append(v, "contain one of "+p.Symbols)
	}
	if !lower {
		v = append(v, "contain a lowercase letter")
	}
	if !upper {
		v = append(v, "contain an uppercase letter")
	}

	if len(v) > 0 {
		return &PolicyError{Violations: v}
	}
	return nil
}
