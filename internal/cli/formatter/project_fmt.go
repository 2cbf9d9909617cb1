package formatter

import (
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects yet. Create one with: fabmanage project add <name>") + "\n"
	}

	headers := []string{"ID", "NAME", "CLIENT", "STATUS", "DEADLINE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.DisplayID(),
			Bold(p.Name),
			orDash(p.Client),
			ProjectStatusPill(p.Status),
			FormatDate(p.Deadline),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectMoved confirms a project status change.
func FormatProjectMoved(p *domain.Project, from domain.ProjectStatus) string {
	return p.DisplayID() + "  " + Dim(string(from)) + " → " + ProjectStatusPill(p.Status) + "\n"
}
