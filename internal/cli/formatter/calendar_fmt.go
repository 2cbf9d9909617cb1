package formatter

import (
	"fmt"
	"strings"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/scheduler"
)

// FormatResourceList renders calendar resources.
func FormatResourceList(resources []*domain.Resource) string {
	if len(resources) == 0 {
		return Dim("No resources yet. Add one with: fabmanage calendar resource add <id>") + "\n"
	}
	headers := []string{"ID", "TITLE", "TYPE"}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{r.ID, Bold(r.Title), string(r.Type)})
	}
	return RenderBox("Resources", RenderTable(headers, rows))
}

// FormatEventList renders calendar events in the order given.
func FormatEventList(events []domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events in range.") + "\n"
	}
	headers := []string{"START", "END", "DURATION", "TITLE", "RESOURCE", "ID"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.Start.Format(DateTimeLayout),
			e.End.Format(DateTimeLayout),
			FormatHours(e.Duration()),
			e.Title,
			orDash(e.ResourceID),
			TruncID(e.ID),
		})
	}
	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{2: true}}
	return RenderBox("Calendar", table.Render())
}

// FormatScheduleResult lists placed events followed by any advisory failures.
func FormatScheduleResult(res *scheduler.Result) string {
	var b strings.Builder
	if len(res.Placed) == 0 {
		b.WriteString(Dim("Nothing scheduled.") + "\n")
	}
	for _, e := range res.Placed {
		b.WriteString(fmt.Sprintf("%s %s – %s  %s\n",
			StyleGreen.Render("✔"),
			e.Start.Format(DateTimeLayout),
			e.End.Format(DateTimeLayout),
			e.Title))
	}
	for _, f := range res.Failures {
		b.WriteString(fmt.Sprintf("%s %s: %s\n", StyleRed.Render("✖"), f.Title, f.Reason))
	}
	return b.String()
}
