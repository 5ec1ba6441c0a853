package users

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmailExists is returned when a registration collides with an existing email.
	ErrEmailExists = errors.New("email already exists")
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("user not found")
)

// User is a registered record. It is created once and never updated.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary renders the one-line contact summary shown on the dashboard.
func (u User) Summary() string {
	return fmt.Sprintf("%s %s, %s, %s", u.FirstName, u.LastName, u.Email, u.Phone)
}

// Registration carries the user-supplied fields of a new record.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// OutcomeKind enumerates the results of an insert.
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota + 1
	OutcomeDuplicateKey
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeDuplicateKey:
		return "duplicate_key"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// InsertOutcome is the typed result of Repository.Insert. Exactly one of
// User (Created), Field (DuplicateKey) or Err (Failure) is meaningful.
type InsertOutcome struct {
	Kind  OutcomeKind
	User  User
	Field string
	Err   error
}

// Created reports a durably stored record.
func Created(u User) InsertOutcome {
	return InsertOutcome{Kind: OutcomeCreated, User: u}
}

// DuplicateKey reports a unique constraint violation on field.
func DuplicateKey(field string) InsertOutcome {
	return InsertOutcome{Kind: OutcomeDuplicateKey, Field: field}
}

// Failure reports any other storage fault.
func Failure(err error) InsertOutcome {
	return InsertOutcome{Kind: OutcomeFailure, Err: err}
}

// Confirmation is the page model shown after a successful registration.
type Confirmation struct {
	ID       string `json:"id"`
	Greeting string `json:"greeting"`
	Message  string `json:"message"`
}
