// Package model defines the core domain types for the activity signup service.
package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Activity is a named extracurricular offering as loaded from the seed list.
type Activity struct {
	Name            string   `yaml:"name" validate:"required"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants" validate:"gt=0"`
	Participants    []string `yaml:"participants" validate:"dive,required,email"`
}

// IsFull returns true when the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Has reports whether email is on the roster.
func (a *Activity) Has(email string) bool {
	return a.indexOf(email) >= 0
}

// Remove drops email from the roster, keeping the order of the others.
// It returns false when email was not present.
func (a *Activity) Remove(email string) bool {
	i := a.indexOf(email)
	if i < 0 {
		return false
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return true
}

func (a *Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// ActivityView is the public shape of an activity returned by GET /activities.
type ActivityView struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog is an ordered set of activity views. It marshals as a JSON object
// keyed by activity name, in seed order.
type Catalog []ActivityView

// MarshalJSON implements json.Marshaler.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Registration records a single successful signup.
type Registration struct {
	ID        string    `json:"id"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is the confirmation envelope for mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error envelope. The web client reads
// the reason from "detail".
type ErrorResponse struct {
	Detail string `json:"detail"`
}
