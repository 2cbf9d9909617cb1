package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Import    service.ImportService
	Tiles     service.TileService
	Workflow  service.WorkflowService
	Calendar  service.CalendarService
	Materials service.MaterialsService

	// Costs are the default commercial percentages for cost estimates.
	Costs materials.CostOptions
	// Now is the clock used for command defaults such as the current week.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// NewRootCmd creates the top-level "fabmanage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fabmanage",
		Short:         "Production workflow, scheduling and materials for fabrication projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newTileCmd(app),
		newCalendarCmd(app),
		newMaterialsCmd(app),
	)

	return root
}
