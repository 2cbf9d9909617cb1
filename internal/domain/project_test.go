package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber_Valid(t *testing.T) {
	cases := []string{"", "P-001", "P-1234", "P-999999"}
	for _, n := range cases {
		p := &Project{Number: n}
		assert.NoError(t, p.ValidateNumber(), "should accept %q", n)
	}
}

func TestValidateNumber_Invalid(t *testing.T) {
	cases := []string{"001", "P-1", "p-001", "P001", "P-0001234"}
	for _, n := range cases {
		p := &Project{Number: n}
		assert.Error(t, p.ValidateNumber(), "should reject %q", n)
	}
}

func TestDisplayID_PrefersNumber(t *testing.T) {
	p := &Project{ID: "3f6c2b8e-aaaa-bbbb", Number: "P-001"}
	assert.Equal(t, "P-001", p.DisplayID())
}

func TestDisplayID_TruncatesUUID(t *testing.T) {
	p := &Project{ID: "3f6c2b8e-aaaa-bbbb"}
	assert.Equal(t, "3f6c2b8e", p.DisplayID())
}

func TestProjectTransitionTo_Allowed(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	p := &Project{ID: "p-1", Status: ProjectNew}
	require.NoError(t, p.TransitionTo(ProjectInProgress, now))
	assert.Equal(t, ProjectInProgress, p.Status)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestProjectTransitionTo_FromTerminal(t *testing.T) {
	for _, terminal := range []ProjectStatus{ProjectDone, ProjectCancelled} {
		p := &Project{ID: "p-1", Status: terminal}
		err := p.TransitionTo(ProjectInProgress, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.Equal(t, terminal, p.Status, "status should not change")
	}
}
