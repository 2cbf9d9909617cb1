package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

// resolveProjectID accepts a P-NNN number, a full id or a unique id prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	p, err := app.Projects.Resolve(ctx, strings.ToUpper(input))
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	if p, err := app.Projects.Resolve(ctx, input); err == nil {
		return p.ID, nil
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	return pickMatch("project", input, matches)
}

// resolveTileID accepts a full tile id or a unique id prefix.
func resolveTileID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("tile ID is required")
	}

	if t, err := app.Tiles.GetByID(ctx, input); err == nil {
		return t.ID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	tiles, err := app.Tiles.List(ctx, repository.TileFilter{})
	if err != nil {
		return "", err
	}
	var matches []string
	for _, t := range tiles {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	return pickMatch("tile", input, matches)
}

func pickMatch(entity, input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q: %w", entity, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", entity, input, len(matches))
	}
}

func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q (want YYYY-MM-DD): %w", flag, value, err)
	}
	return &d, nil
}

// weekStart returns Monday 00:00 UTC of the week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
}
