// Package validation checks user input before it reaches the network.
// A validation failure here is surfaced immediately in the form and is
// never sent to the server.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateEmail validates an email address (basic validation).
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}
	if len(email) > 255 {
		return fmt.Errorf("email must be at most 255 characters long, got %d", len(email))
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidatePassword validates a password.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long, got %d", len(password))
	}
	if len(password) > 128 {
		return fmt.Errorf("password must be at most 128 characters long, got %d", len(password))
	}
	return nil
}

// ValidatePhone validates a phone number in loose E.164 form: an
// optional leading + followed by 7 to 15 digits.
func ValidatePhone(phone string) error {
	if phone == "" {
		return errors.New("phone number cannot be empty")
	}
	if !phoneRegex.MatchString(phone) {
		return errors.New("phone number must be digits with an optional leading +")
	}
	return nil
}

// ValidateDate validates a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if date == "" {
		return errors.New("date cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}

// ValidateAppointment validates the appointment create form.
func ValidateAppointment(customerName, customerPhone, date, timeOfDay string) error {
	if customerName == "" {
		return errors.New("customer name cannot be empty")
	}
	if err := ValidatePhone(customerPhone); err != nil {
		return err
	}
	if err := ValidateDate(date); err != nil {
		return err
	}
	if timeOfDay == "" {
		return errors.New("appointment time cannot be empty")
	}
	return nil
}

// ValidateScript validates the script editor form. The content must
// parse as JSON before any save or test-run is attempted; the server
// does not enforce this.
func ValidateScript(name, content string) error {
	if name == "" {
		return errors.New("script name cannot be empty")
	}
	if content == "" {
		return errors.New("script content cannot be empty")
	}
	if !json.Valid([]byte(content)) {
		return errors.New("script content is not valid JSON")
	}
	return nil
}

// ValidateLogin validates the login form.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}
	return nil
}

// ValidateRegister validates the registration form.
func ValidateRegister(name, email, password string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
