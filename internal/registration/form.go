// Package registration holds the registration form: field validation that
// runs before anything is sent, and the submit flow that turns the endpoint's
// answer into what the user sees next.
package registration

import (
	"regexp"
	"strings"
)

// Validation messages, keyed by form field.
const (
	MsgFirstNameRequired = "First Name is required."
	MsgLastNameRequired  = "Last Name is required."
	MsgEmailRequired     = "Email is required."
	MsgEmailInvalid      = "Email is invalid."
	MsgPhoneRequired     = "Phone Number is required."
	MsgPhoneInvalid      = "Phone Number is invalid (min 10 digits)."
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	// Only the leading digit run is checked; trailing characters pass.
	phonePattern = regexp.MustCompile(`^\d{10,}`)
)

// Form is the registration payload as typed by the user.
type Form struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FieldErrors maps a field name (firstName, lastName, email, phone) to its
// message. An empty map means the form may be submitted.
type FieldErrors map[string]string

// Validate checks every field and collects one message per failing field.
func Validate(f Form) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = MsgFirstNameRequired
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = MsgLastNameRequired
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = MsgEmailRequired
	case !emailPattern.MatchString(f.Email):
		errs["email"] = MsgEmailInvalid
	}

	switch {
	case strings.TrimSpace(f.Phone) == "":
		errs["phone"] = MsgPhoneRequired
	case !phonePattern.MatchString(f.Phone):
		errs["phone"] = MsgPhoneInvalid
	}

	return errs
}

// Clear drops the message for field, as happens when the user edits it.
func (fe FieldErrors) Clear(field string) {
	delete(fe, field)
}
