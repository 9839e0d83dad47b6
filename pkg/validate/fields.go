package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp    = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,20}$`)
	nameRegexp     = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,80}$`)
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	minAge            = 0
	maxAge            = 150

	passwordSpecials = `!@#$%^&*()_+-=[]{}|;:,.<>?`
)

// FieldError carries a user-facing message for a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Message }

func fail(field, format string, args ...any) error {
	return FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required rejects empty or whitespace-only values.
func Required(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fail(label, "%s is required", label)
	}
	return nil
}

// Email accepts an empty value; the field is optional everywhere it appears.
func Email(email string) error {
	if email == "" {
		return nil
	}
	email = strings.TrimSpace(email)
	if len(email) > 120 {
		return fail("Email", "Email must not exceed 120 characters")
	}
	if !emailRegexp.MatchString(email) {
		return fail("Email", "Email format is invalid")
	}
	return nil
}

// Phone accepts an empty value. Non-empty values must be 10 to 20 characters
// of digits, spaces, and common punctuation.
func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > 20 {
		return fail("Phone", "Phone must not exceed 20 characters")
	}
	if !phoneRegexp.MatchString(phone) {
		return fail("Phone", "Phone format is invalid (must contain 10-20 digits)")
	}
	return nil
}

// Name validates a person-name field such as a first or last name.
func Name(name, label string) error {
	if err := Required(name, label); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if len(name) > 100 {
		return fail(label, "%s must not exceed 100 characters", label)
	}
	if !nameRegexp.MatchString(name) {
		return fail(label, "%s can only contain letters, spaces, hyphens, apostrophes, and periods", label)
	}
	return nil
}

// DateOfBirth validates a YYYY-MM-DD date that is not in the future and
// yields an age between 0 and 150 years.
func DateOfBirth(dob string) error {
	const label = "Date of birth"
	if err := Required(dob, label); err != nil {
		return err
	}
	birth, err := time.Parse("2006-01-02", strings.TrimSpace(dob))
	if err != nil {
		return fail(label, "%s must be in YYYY-MM-DD format", label)
	}
	today := time.Now()
	if birth.After(today) {
		return fail(label, "%s cannot be in the future", label)
	}
	age := today.Sub(birth).Hours() / 24 / 365.25
	if age < minAge || age > maxAge {
		return fail(label, "%s must represent an age between %d and %d years", label, minAge, maxAge)
	}
	return nil
}

// Gender validates the gender enum. Both capitalizations are accepted, as the
// remote service stores whichever it receives.
func Gender(gender string) error {
	const label = "Gender"
	if err := Required(gender, label); err != nil {
		return err
	}
	switch gender {
	case "Male", "Female", "Other", "male", "female", "other":
		return nil
	}
	return fail(label, "%s must be one of: Male, Female, Other", label)
}

// TextLength validates an optional bounded text field such as an address or
// the medical history.
func TextLength(text string, maxLength int, label string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) > maxLength {
		return fail(label, "%s must not exceed %d characters", label, maxLength)
	}
	return nil
}

// Username validates account-name format and length.
func Username(username string) error {
	const label = "Username"
	if err := Required(username, label); err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return fail(label, "%s must be at least 3 characters", label)
	}
	if len(username) > 80 {
		return fail(label, "%s must not exceed 80 characters", label)
	}
	if !usernameRegexp.MatchString(username) {
		return fail(label, "%s can only contain letters, numbers, underscores, and hyphens", label)
	}
	return nil
}

// Password validates length and requires all four character classes.
func Password(password string) error {
	const label = "Password"
	if err := Required(password, label); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return fail(label, "%s must be at least %d characters", label, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fail(label, "%s must not exceed %d characters", label, maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !(hasUpper && hasLower && hasDigit && hasSpecial) {
		return fail(label, "%s must contain at least one uppercase letter, one lowercase letter, one digit, and one special character", label)
	}
	return nil
}
