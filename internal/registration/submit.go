package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Alert texts shown when a submission does not go through.
const (
	MsgSubmitFailed = "Failed to register. Please try again."
	MsgNetworkError = "Network error. Please try again."
)

// ConfirmationPath is where a successful registration navigates, with the new
// record's id appended.
const ConfirmationPath = "/confirmation/"

// ValidationError blocks submission while any field message is present.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid registration: " + strings.Join(keys, ", ")
}

// RejectedError is a non-success answer from the endpoint.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("registration rejected (%d): %s", e.Status, e.Message)
}

// NetworkError wraps a transport failure talking to the endpoint.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "registration request failed: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// Response is the endpoint's answer to a submission.
type Response struct {
	Status int
	Body   []byte
}

// Submitter sends a form to the registration endpoint. An error means the
// request did not complete; any HTTP answer is a Response.
type Submitter interface {
	Submit(ctx context.Context, f Form) (Response, error)
}

// Outcome is what the user sees after pressing submit: either a navigation
// target, an alert, or inline field messages.
type Outcome struct {
	Navigate string
	Alert    string
	Fields   FieldErrors
}

// Submit validates f and, when it is clean, sends it through s. The returned
// error is nil only when the outcome is a navigation.
func (f Form) Submit(ctx context.Context, s Submitter) (Outcome, error) {
	if errs := Validate(f); len(errs) > 0 {
		return Outcome{Fields: errs}, &ValidationError{Fields: errs}
	}

	resp, err := s.Submit(ctx, f)
	if err != nil {
		return Outcome{Alert: MsgNetworkError}, &NetworkError{Err: err}
	}

	if resp.Status >= http.StatusOK && resp.Status < http.StatusMultipleChoices {
		var created struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(resp.Body, &created); err != nil || created.ID == "" {
			return Outcome{Alert: MsgSubmitFailed}, errors.Join(errors.New("registration response has no id"), err)
		}
		return Outcome{Navigate: ConfirmationPath + created.ID}, nil
	}

	msg := MsgSubmitFailed
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(resp.Body, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	return Outcome{Alert: msg}, &RejectedError{Status: resp.Status, Message: msg}
}
