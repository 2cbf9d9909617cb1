package domain

import (
	"fmt"
	"regexp"
	"time"
)

var projectNumberPattern = regexp.MustCompile(`^P-[0-9]{3,6}$`)

type Project struct {
	ID       string
	Number   string // e.g. P-001
	Name     string
	Client   string
	Status   ProjectStatus
	Deadline *time.Time
	Budget   float64
	Manager  string

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateNumber checks that Number is empty or matches the P-NNN format.
func (p *Project) ValidateNumber() error {
	if p.Number == "" {
		return nil
	}
	if !projectNumberPattern.MatchString(p.Number) {
		return fmt.Errorf("project number %q must look like P-001", p.Number)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Number; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.Number != "" {
		return p.Number
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// TransitionTo moves the project to status to if the lifecycle allows it.
func (p *Project) TransitionTo(to ProjectStatus, now time.Time) error {
	if !ProjectTransitions.IsValidTransition(p.Status, to) {
		return &InvalidTransitionError{
			Entity:   "project",
			EntityID: p.ID,
			From:     string(p.Status),
			To:       string(to),
		}
	}
	p.Status = to
	p.UpdatedAt = now
	return nil
}
