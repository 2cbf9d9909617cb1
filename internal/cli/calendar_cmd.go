package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli/formatter"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Resources, events and automatic scheduling",
	}

	cmd.AddCommand(
		newResourceCmd(app),
		newCalendarListCmd(app),
		newCalendarScheduleCmd(app),
		newCalendarExportCmd(app),
		newCalendarRemoveCmd(app),
	)

	return cmd
}

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage calendar resources",
	}
	cmd.AddCommand(newResourceAddCmd(app), newResourceListCmd(app))
	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var title, typ, color string

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Register a designer, team or machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := domain.ParseResourceType(typ)
			if err != nil {
				return err
			}
			r := &domain.Resource{ID: args[0], Title: title, Type: rt, Color: color}
			if err := app.Calendar.AddResource(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added resource %s (%s)\n", r.ID, r.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Display name (defaults to ID)")
	cmd.Flags().StringVar(&typ, "type", string(domain.ResourceTeam), "Resource type (project, designer, team)")
	cmd.Flags().StringVar(&color, "color", "", "Display color")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := app.Calendar.ListResources(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResourceList(resources))
			return nil
		},
	}
}

func newCalendarListCmd(app *App) *cobra.Command {
	var resource, project, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := repository.EventFilter{ResourceID: resource}
			if project != "" {
				id, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				filter.ProjectID = id
			}
			fromDate, err := parseDate("from", from)
			if err != nil {
				return err
			}
			if fromDate != nil {
				filter.From = *fromDate
			}
			toDate, err := parseDate("to", to)
			if err != nil {
				return err
			}
			if toDate != nil {
				filter.To = toDate.AddDate(0, 0, 1)
			}

			events, err := app.Calendar.ListEvents(ctx, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventList(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Only events of this resource")
	cmd.Flags().StringVar(&project, "project", "", "Only events of this project")
	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day, inclusive (YYYY-MM-DD)")

	return cmd
}

func newCalendarScheduleCmd(app *App) *cobra.Command {
	var phase, resource string

	cmd := &cobra.Command{
		Use:   "schedule PROJECT",
		Short: "Book one phase for every open tile of a project",
		Long: `Book one phase for every open tile of a project.

Tiles are placed back to back on the resource's calendar, prerequisites
first and then by priority, starting now or after the resource's last
conflicting event.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ph, err := domain.ParsePhase(phase)
			if err != nil {
				return err
			}

			res, err := app.Calendar.ScheduleProject(ctx, projectID, ph, resource)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScheduleResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", string(domain.PhaseCutting), "Phase (projektowanie, wycinanie, produkcja)")
	cmd.Flags().StringVar(&resource, "resource", "", "Resource to book")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func newCalendarExportCmd(app *App) *cobra.Command {
	var week, resource string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a week's schedule as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := weekStart(app.now())
			if week != "" {
				d, err := parseDate("week", week)
				if err != nil {
					return err
				}
				start = weekStart(*d)
			}

			out, err := app.Calendar.ExportWeek(cmd.Context(), start, resource)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day of the week to export (YYYY-MM-DD, default this week)")
	cmd.Flags().StringVar(&resource, "resource", "", "Only events of this resource")

	return cmd
}

func newCalendarRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EVENT",
		Short: "Delete a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Calendar.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed event %s\n", args[0])
			return nil
		},
	}
}
