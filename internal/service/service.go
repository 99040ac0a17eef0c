// Package service implements validation and orchestration between HTTP
// handlers and the activity directory.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/observability"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
)

// ErrInvalidEmail is returned when the participant email is missing or malformed.
var ErrInvalidEmail = errors.New("a valid email is required")

// unknownActivity labels metrics for names outside the directory so callers
// cannot grow label cardinality.
const unknownActivity = "unknown"

// ActivityService orchestrates signup and unregister operations.
type ActivityService struct {
	directory *repository.Directory
	metrics   *observability.Metrics
	validate  *validator.Validate
}

// NewActivityService constructs an ActivityService with its dependencies and
// primes the roster gauge from the directory's current state.
func NewActivityService(directory *repository.Directory, metrics *observability.Metrics) *ActivityService {
	s := &ActivityService{
		directory: directory,
		metrics:   metrics,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, v := range directory.List(context.Background()) {
		metrics.SetParticipants(v.Name, len(v.Participants))
	}
	return s
}

// ListActivities returns every activity in seed order.
func (s *ActivityService) ListActivities(ctx context.Context) model.Catalog {
	return model.Catalog(s.directory.List(ctx))
}

// Signup registers email for the named activity and returns a confirmation message.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if _, err := s.directory.Get(ctx, activity); err != nil {
		s.metrics.RecordSignup(unknownActivity, observability.OutcomeNotFound)
		return "", err
	}
	email, err := s.normalizeEmail(email)
	if err != nil {
		s.metrics.RecordSignup(activity, observability.OutcomeInvalid)
		return "", err
	}

	reg, err := s.directory.Signup(ctx, activity, email)
	if err != nil {
		s.metrics.RecordSignup(activity, signupOutcome(err))
		// Surface domain errors directly so handlers can set correct HTTP status.
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, repository.ErrAlreadyRegistered) ||
			errors.Is(err, repository.ErrActivityFull) {
			return "", err
		}
		return "", fmt.Errorf("sign up for %s: %w", activity, err)
	}

	s.metrics.RecordSignup(activity, observability.OutcomeOK)
	s.metrics.AddParticipants(activity, 1)
	log.Printf("registration %s: %s signed up for %s", reg.ID, reg.Email, reg.Activity)

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if _, err := s.directory.Get(ctx, activity); err != nil {
		s.metrics.RecordUnregister(unknownActivity, observability.OutcomeNotFound)
		return "", err
	}
	email, err := s.normalizeEmail(email)
	if err != nil {
		s.metrics.RecordUnregister(activity, observability.OutcomeInvalid)
		return "", err
	}

	if err := s.directory.Unregister(ctx, activity, email); err != nil {
		s.metrics.RecordUnregister(activity, unregisterOutcome(err))
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrNotRegistered) {
			return "", err
		}
		return "", fmt.Errorf("unregister from %s: %w", activity, err)
	}

	s.metrics.RecordUnregister(activity, observability.OutcomeOK)
	s.metrics.AddParticipants(activity, -1)
	log.Printf("%s unregistered from %s", email, activity)

	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func (s *ActivityService) normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func signupOutcome(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return observability.OutcomeDuplicate
	case errors.Is(err, repository.ErrActivityFull):
		return observability.OutcomeFull
	default:
		return observability.OutcomeError
	}
}

func unregisterOutcome(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, repository.ErrNotRegistered):
		return observability.OutcomeNotRegistered
	default:
		return observability.OutcomeError
	}
}
