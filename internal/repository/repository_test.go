package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivities() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Art Workshop",
			Description:     "Explore painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
		},
	}
}

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	d, err := NewDirectory(testActivities())
	require.NoError(t, err)
	return d
}

func TestNewDirectory_Validation(t *testing.T) {
	tests := []struct {
		name        string
		activities  []model.Activity
		errContains string
	}{
		{
			name:        "missing name",
			activities:  []model.Activity{{MaxParticipants: 1}},
			errContains: "name is required",
		},
		{
			name: "duplicate activity",
			activities: []model.Activity{
				{Name: "Chess Club", MaxParticipants: 1},
				{Name: "Chess Club", MaxParticipants: 2},
			},
			errContains: "duplicate activity",
		},
		{
			name:        "zero capacity",
			activities:  []model.Activity{{Name: "Chess Club"}},
			errContains: "must be positive",
		},
		{
			name: "roster over capacity",
			activities: []model.Activity{{
				Name:            "Chess Club",
				MaxParticipants: 1,
				Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
			}},
			errContains: "exceed capacity",
		},
		{
			name: "duplicate participant",
			activities: []model.Activity{{
				Name:            "Chess Club",
				MaxParticipants: 3,
				Participants:    []string{"a@mergington.edu", "a@mergington.edu"},
			}},
			errContains: "duplicate participant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirectory(tt.activities)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestNewDirectory_DoesNotAliasSeed(t *testing.T) {
	seed := testActivities()
	d, err := NewDirectory(seed)
	require.NoError(t, err)

	_, err = d.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Len(t, seed[0].Participants, 2)
}

func TestList_SeedOrder(t *testing.T) {
	d := newTestDirectory(t)

	views := d.List(context.Background())
	require.Len(t, views, 2)
	assert.Equal(t, "Chess Club", views[0].Name)
	assert.Equal(t, "Art Workshop", views[1].Name)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, views[0].Participants)
	assert.NotNil(t, views[1].Participants)
	assert.Empty(t, views[1].Participants)
}

func TestList_ReturnsSnapshot(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	views := d.List(ctx)
	views[0].Participants[0] = "mutated@mergington.edu"

	view, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", view.Participants[0])
}

func TestSignup(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	reg, err := d.Signup(ctx, "Art Workshop", "test.user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "Art Workshop", reg.Activity)
	assert.Equal(t, "test.user@example.com", reg.Email)
	assert.False(t, reg.CreatedAt.IsZero())

	view, err := d.Get(ctx, "Art Workshop")
	require.NoError(t, err)
	assert.Equal(t, []string{"test.user@example.com"}, view.Participants)
}

func TestSignup_UnknownActivity(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	_, err := d.Signup(ctx, "Underwater Basket Weaving", "test.user@example.com")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = d.Get(ctx, "Underwater Basket Weaving")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, d.List(ctx), 2)
}

func TestSignup_Duplicate(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	_, err := d.Signup(ctx, "Art Workshop", "test.user@example.com")
	require.NoError(t, err)
	_, err = d.Signup(ctx, "Art Workshop", "test.user@example.com")
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	view, err := d.Get(ctx, "Art Workshop")
	require.NoError(t, err)
	assert.Equal(t, []string{"test.user@example.com"}, view.Participants)
}

func TestSignup_Capacity(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	_, err := d.Signup(ctx, "Art Workshop", "a@mergington.edu")
	require.NoError(t, err)
	_, err = d.Signup(ctx, "Art Workshop", "b@mergington.edu")
	require.NoError(t, err)

	_, err = d.Signup(ctx, "Art Workshop", "c@mergington.edu")
	require.ErrorIs(t, err, ErrActivityFull)

	// A duplicate on a full activity reports the duplicate, not capacity.
	_, err = d.Signup(ctx, "Art Workshop", "a@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	view, err := d.Get(ctx, "Art Workshop")
	require.NoError(t, err)
	assert.Len(t, view.Participants, 2)
}

func TestUnregister(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, d.Unregister(ctx, "Chess Club", "michael@mergington.edu"))

	view, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, view.Participants)
}

func TestUnregister_Errors(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	require.ErrorIs(t, d.Unregister(ctx, "Nope", "michael@mergington.edu"), ErrNotFound)
	require.ErrorIs(t, d.Unregister(ctx, "Chess Club", "ghost@mergington.edu"), ErrNotRegistered)

	view, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, view.Participants, 2)
}

func TestSignupUnregister_RoundTrip(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	before, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)

	_, err = d.Signup(ctx, "Chess Club", "test.user@example.com")
	require.NoError(t, err)
	require.NoError(t, d.Unregister(ctx, "Chess Club", "test.user@example.com"))

	after, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants)
}

func TestSignup_ConcurrentCapacity(t *testing.T) {
	d, err := NewDirectory([]model.Activity{{Name: "Gym Class", MaxParticipants: 10}})
	require.NoError(t, err)
	ctx := context.Background()

	const attempts = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := d.Signup(ctx, "Gym Class", fmt.Sprintf("student%d@mergington.edu", i)); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, success)
	view, err := d.Get(ctx, "Gym Class")
	require.NoError(t, err)
	assert.Len(t, view.Participants, 10)
}

func TestSignup_ConcurrentSameEmail(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Signup(ctx, "Chess Club", "same@mergington.edu")
		}()
	}
	wg.Wait()

	view, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	count := 0
	for _, p := range view.Participants {
		if p == "same@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
