package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// withAllowedTileStatuses appends the statuses a rejected tile move could
// have targeted instead.
func withAllowedTileStatuses(err error, from domain.TileStatus) error {
	if !errors.Is(err, domain.ErrInvalidTransition) {
		return err
	}
	return fmt.Errorf("%w (allowed from %q: %s)", err, from, joinStatuses(domain.TileTransitions.ValidNextStatuses(from)))
}

func withAllowedProjectStatuses(err error, from domain.ProjectStatus) error {
	if !errors.Is(err, domain.ErrInvalidTransition) {
		return err
	}
	return fmt.Errorf("%w (allowed from %q: %s)", err, from, joinStatuses(domain.ProjectTransitions.ValidNextStatuses(from)))
}

func joinStatuses[S ~string](statuses []S) string {
	if len(statuses) == 0 {
		return "none"
	}
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = fmt.Sprintf("%q", string(s))
	}
	return strings.Join(parts, ", ")
}
