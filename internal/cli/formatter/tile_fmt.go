package formatter

import (
	"fmt"
	"strings"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// FormatTileList renders tiles with their status, priority and material cost.
func FormatTileList(tiles []*domain.Tile) string {
	if len(tiles) == 0 {
		return Dim("No tiles found.") + "\n"
	}

	headers := []string{"ID", "NAME", "STATUS", "PRIORITY", "DESIGNER", "MATERIALS", "LABOR"}
	rows := make([][]string, 0, len(tiles))
	for _, t := range tiles {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Name),
			TileStatusPill(t.Status),
			PriorityBadge(t.Priority),
			orDash(t.Designer),
			fmt.Sprintf("%.2f", t.MaterialCost()),
			fmt.Sprintf("%.2f", t.LaborCost),
		})
	}

	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{5: true, 6: true}}
	return RenderBox("Tiles", table.Render())
}

// FormatTileDetail renders one tile with its BOM, dependencies and the
// statuses it may move to next.
func FormatTileDetail(t *domain.Tile) string {
	var b strings.Builder

	b.WriteString(Bold(t.Name) + "\n\n")
	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}
	field("ID", t.ID)
	field("STATUS", TileStatusPill(t.Status))
	field("PRIORITY", PriorityBadge(t.Priority))
	field("PROJECT", orDash(t.ProjectID))
	field("DESIGNER", orDash(t.Designer))
	field("TECHNOLOGY", orDash(t.Technology))
	field("DEADLINE", FormatDate(t.Deadline))
	field("LABOR", fmt.Sprintf("%.2f", t.LaborCost))
	field("VERSION", fmt.Sprintf("%d", t.Version))

	b.WriteString("\n" + Header("Bill of materials") + "\n")
	if len(t.BOM) == 0 {
		b.WriteString(Dim("empty") + "\n")
	} else {
		b.WriteString(FormatBOM(t.BOM))
		b.WriteString(fmt.Sprintf("%s %.2f\n", Dim("material cost:"), t.MaterialCost()))
	}

	if len(t.Dependencies) > 0 {
		b.WriteString("\n" + Header("Depends on") + "\n")
		for _, id := range t.Dependencies {
			b.WriteString("  " + TruncID(id) + "\n")
		}
	}

	b.WriteString("\n" + Header("Next") + "\n")
	b.WriteString(FormatNextStatuses(t.ValidNextStatuses()) + "\n")

	return RenderBox("", b.String())
}

// FormatBOM renders BOM lines as a table.
func FormatBOM(lines []domain.BOMLine) string {
	headers := []string{"NAME", "QTY", "UNIT", "UNIT COST", "COST", "STOCK"}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		unitCost := Dim("--")
		if l.UnitCost != nil {
			unitCost = fmt.Sprintf("%.2f", *l.UnitCost)
		}
		rows = append(rows, []string{
			l.Name,
			FormatQuantity(l.Quantity),
			l.Unit,
			unitCost,
			fmt.Sprintf("%.2f", l.Cost()),
			orDash(l.MaterialID),
		})
	}
	return Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{1: true, 3: true, 4: true}}.Render()
}

// FormatNextStatuses lists allowed statuses, or notes that the tile is finished.
func FormatNextStatuses(next []domain.TileStatus) string {
	if len(next) == 0 {
		return Dim("none (terminal status)")
	}
	parts := make([]string, len(next))
	for i, s := range next {
		parts[i] = TileStatusPill(s)
	}
	return strings.Join(parts, Dim(", "))
}

// TransitionView is what a tile status change produced, for display.
type TransitionView struct {
	Tile       *domain.Tile
	From       domain.TileStatus
	Phase      domain.Phase
	ResourceID string
	Placed     []domain.CalendarEvent
	Reserved   int
	Requested  int
}

// FormatTransition summarizes a tile move and any side effects it triggered.
func FormatTransition(v TransitionView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s → %s\n", Bold(v.Tile.Name), Dim(string(v.From)), TileStatusPill(v.Tile.Status)))

	if v.Phase != "" {
		switch {
		case v.ResourceID == "":
			b.WriteString(Dim(fmt.Sprintf("%s: no resource configured, nothing scheduled", v.Phase.Label())) + "\n")
		case len(v.Placed) == 0:
			b.WriteString(StyleYellow.Render(fmt.Sprintf("%s: could not be scheduled on %s", v.Phase.Label(), v.ResourceID)) + "\n")
		default:
			for _, e := range v.Placed {
				b.WriteString(fmt.Sprintf("%s %s  %s – %s  %s\n",
					StyleGreen.Render("scheduled"),
					e.Title,
					e.Start.Format(DateTimeLayout),
					e.End.Format(DateTimeLayout),
					Dim(e.ResourceID)))
			}
		}
	}

	if v.Reserved > 0 || v.Requested > 0 {
		b.WriteString(fmt.Sprintf("%s %d reserved, %d purchase request(s)\n", Dim("materials:"), v.Reserved, v.Requested))
	}
	return b.String()
}
