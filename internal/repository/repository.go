// Package repository holds the in-memory activity directory, the sole owner
// of activity records and their participant rosters.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("student is already signed up for this activity")

// ErrNotRegistered is returned when removing an email that is not on the roster.
var ErrNotRegistered = errors.New("student is not signed up for this activity")

// entry pairs an activity with the lock guarding its roster.
type entry struct {
	mu       sync.Mutex
	activity model.Activity
}

// Directory maps activity names to their records. The set of activities is
// fixed at construction; only rosters change afterwards.
type Directory struct {
	order   []string
	entries map[string]*entry
	now     func() time.Time
}

// NewDirectory builds a Directory from seed records. Records are copied so
// the caller's slices are never mutated.
func NewDirectory(activities []model.Activity) (*Directory, error) {
	d := &Directory{
		order:   make([]string, 0, len(activities)),
		entries: make(map[string]*entry, len(activities)),
		now:     func() time.Time { return time.Now().UTC() },
	}

	for _, a := range activities {
		if a.Name == "" {
			return nil, fmt.Errorf("activity name is required")
		}
		if _, dup := d.entries[a.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q", a.Name)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", a.Name)
		}
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("activity %q: %d participants exceed capacity %d",
				a.Name, len(a.Participants), a.MaxParticipants)
		}

		roster := make([]string, 0, len(a.Participants))
		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, ok := seen[p]; ok {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", a.Name, p)
			}
			seen[p] = struct{}{}
			roster = append(roster, p)
		}
		a.Participants = roster

		d.order = append(d.order, a.Name)
		d.entries[a.Name] = &entry{activity: a}
	}
	return d, nil
}

// List returns a snapshot of every activity in seed order.
func (d *Directory) List(ctx context.Context) []model.ActivityView {
	views := make([]model.ActivityView, 0, len(d.order))
	for _, name := range d.order {
		views = append(views, d.entries[name].view())
	}
	return views
}

// Get returns a snapshot of a single activity or ErrNotFound.
func (d *Directory) Get(ctx context.Context, name string) (model.ActivityView, error) {
	e, ok := d.entries[name]
	if !ok {
		return model.ActivityView{}, ErrNotFound
	}
	return e.view(), nil
}

// Signup adds email to the named activity's roster.
//
// The duplicate and capacity checks and the append run under the activity's
// lock, so concurrent signups can neither register the same email twice nor
// push the roster past MaxParticipants.
func (d *Directory) Signup(ctx context.Context, name, email string) (*model.Registration, error) {
	e, ok := d.entries[name]
	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activity.Has(email) {
		return nil, ErrAlreadyRegistered
	}
	if e.activity.IsFull() {
		return nil, ErrActivityFull
	}
	e.activity.Participants = append(e.activity.Participants, email)

	return &model.Registration{
		ID:        uuid.New().String(),
		Activity:  name,
		Email:     email,
		CreatedAt: d.now(),
	}, nil
}

// Unregister removes email from the named activity's roster.
func (d *Directory) Unregister(ctx context.Context, name, email string) error {
	e, ok := d.entries[name]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activity.Remove(email) {
		return ErrNotRegistered
	}
	return nil
}

func (e *entry) view() model.ActivityView {
	e.mu.Lock()
	defer e.mu.Unlock()

	participants := make([]string, len(e.activity.Participants))
	copy(participants, e.activity.Participants)
	return model.ActivityView{
		Name:            e.activity.Name,
		Description:     e.activity.Description,
		Schedule:        e.activity.Schedule,
		MaxParticipants: e.activity.MaxParticipants,
		Participants:    participants,
	}
}
