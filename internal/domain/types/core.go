package types

import "strings"

// PhoneDigits is the exact length of a valid phone number.
const PhoneDigits = 10

// Name is a contact name. The zero value is invalid.
type Name string

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return "", &ValidationError{Msg: "provide user name"}
	}
	return Name(s), nil
}

// String returns the string form of the name.
func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly PhoneDigits ASCII digits.
type Phone string

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if !isPhone(s) {
		return "", &ValidationError{Msg: "phone number must be a 10-digit number"}
	}
	return Phone(s), nil
}

// String returns the string form of the phone number.
func (p Phone) String() string { return string(p) }

func isPhone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
