package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli/formatter"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectImportCmd(app),
		newProjectListCmd(app),
		newProjectMoveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var number, client, manager, deadline string
	var budget float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := parseDate("deadline", deadline)
			if err != nil {
				return err
			}

			p := &domain.Project{
				Number:   number,
				Name:     args[0],
				Client:   client,
				Manager:  manager,
				Budget:   budget,
				Deadline: due,
			}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Project number (e.g. P-001)")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&manager, "manager", "", "Project manager")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget")

	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a project with its tiles from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported project %s [%s]: %d tiles, %d BOM lines, %d dependencies\n",
				res.Project.Name, res.Project.DisplayID(), res.TileCount, res.BOMLineCount, res.DependencyCount)
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseProjectStatus(args[1])
			if err != nil {
				return err
			}

			before, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			moved, err := app.Projects.RequestTransition(ctx, projectID, to)
			if err != nil {
				return withAllowedProjectStatuses(err, before.Status)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectMoved(moved, before.Status))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", projectID)
			return nil
		},
	}
}
