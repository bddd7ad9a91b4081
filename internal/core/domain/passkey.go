package domain

import (
	"regexp"
)

var (
	digitRegexp  = regexp.MustCompile(`\d`)
	letterRegexp = regexp.MustCompile(`[a-zA-Z]`)
	upperRegexp  = regexp.MustCompile(`[A-Z]`)
	symbolRegexp = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasskeyStrength is a 0-4 score of a passkey.
type PasskeyStrength int

const (
	StrengthVeryWeak PasskeyStrength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
	StrengthVeryStrong
)

func (s PasskeyStrength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very strong"
	default:
		return "Very weak"
	}
}

// ValidatePasskey checks the passkey is at least 8 chars long and contains at
// least one letter and one digit.
func ValidatePasskey(passkey string) error {
	if len(passkey) < MinPasskeyLength {
		return ErrPasskeyTooShort
	}
	if !digitRegexp.MatchString(passkey) || !letterRegexp.MatchString(passkey) {
		return ErrPasskeyTooWeak
	}
	return nil
}

// ValidatePasskeyConfirmation ...
func ValidatePasskeyConfirmation(passkey, confirm string) error {
	if passkey != confirm {
		return ErrPasskeyMismatch
	}
	return nil
}

// GetPasskeyStrength scores the passkey one point each for length, uppercase
// letters, digits and symbols.
func GetPasskeyStrength(passkey string) PasskeyStrength {
	strength := StrengthVeryWeak
	if len(passkey) >= MinPasskeyLength {
		strength++
	}
	if upperRegexp.MatchString(passkey) {
		strength++
	}
	if digitRegexp.MatchString(passkey) {
		strength++
	}
	if symbolRegexp.MatchString(passkey) {
		strength++
	}
	return strength
}
