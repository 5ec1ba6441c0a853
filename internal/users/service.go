package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/regdesk/regdesk/internal/notification"
)

const confirmationMessage = "Thank you for registering!"

// Service manages the registration lifecycle.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new registration service. notifier and logger may be nil.
func NewService(repo Repository, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

// Register stores a new record. The store's unique constraint is the only
// duplicate check; a DuplicateKey on email maps to ErrEmailExists.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	user := User{
		ID:        uuid.New().String(),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Phone:     reg.Phone,
		CreatedAt: s.now().UTC(),
	}

	outcome := s.repo.Insert(ctx, user)
	switch outcome.Kind {
	case OutcomeCreated:
		s.notify(ctx, outcome.User)
		return outcome.User, nil
	case OutcomeDuplicateKey:
		if outcome.Field == "email" {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("duplicate %s", outcome.Field)
	case OutcomeFailure:
		return User{}, outcome.Err
	default:
		return User{}, fmt.Errorf("unexpected insert outcome %s", outcome.Kind)
	}
}

// List returns every registered user.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

// Confirmation builds the post-registration page model for id.
func (s *Service) Confirmation(ctx context.Context, id string) (Confirmation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Confirmation{}, ErrNotFound
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Confirmation{}, err
	}
	name := user.FirstName
	if name == "" {
		name = user.Email
	}
	if name == "" {
		name = "there"
	}
	return Confirmation{ID: user.ID, Greeting: "Hi " + name, Message: confirmationMessage}, nil
}

func (s *Service) notify(ctx context.Context, user User) {
	if s.notifier == nil {
		return
	}
	msg := notification.Message{
		Kind:        notification.KindUserRegistered,
		Destination: user.Email,
		Body:        fmt.Sprintf("%s %s registered", user.FirstName, user.LastName),
	}
	if err := s.notifier.Send(ctx, msg); err != nil && s.logger != nil {
		s.logger.Warn("registration notification failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}
}
