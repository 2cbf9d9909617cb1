package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli/formatter"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

func newTileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Manage tiles and move them through the production workflow",
	}

	cmd.AddCommand(
		newTileAddCmd(app),
		newTileListCmd(app),
		newTileShowCmd(app),
		newTileMoveCmd(app),
		newTileBOMCmd(app),
		newTileDependCmd(app),
		newTileRemoveCmd(app),
	)

	return cmd
}

func newTileAddCmd(app *App) *cobra.Command {
	var project, priority, designer, technology, deadline string
	var labor float64
	var dependsOn []string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new tile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prio, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}
			due, err := parseDate("deadline", deadline)
			if err != nil {
				return err
			}

			var projectID string
			if project != "" {
				if projectID, err = resolveProjectID(ctx, app, project); err != nil {
					return err
				}
			}

			deps := make([]string, 0, len(dependsOn))
			for _, ref := range dependsOn {
				id, err := resolveTileID(ctx, app, ref)
				if err != nil {
					return err
				}
				deps = append(deps, id)
			}

			t := &domain.Tile{
				Name:         args[0],
				ProjectID:    projectID,
				LaborCost:    labor,
				Priority:     prio,
				Designer:     designer,
				Technology:   technology,
				Deadline:     due,
				Dependencies: deps,
			}
			if err := app.Tiles.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created tile %s [%s]\n", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project number or ID")
	cmd.Flags().Float64Var(&labor, "labor", 0, "Labor cost")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (Wysoki, Średni, Niski)")
	cmd.Flags().StringVar(&designer, "designer", "", "Assigned designer resource")
	cmd.Flags().StringVar(&technology, "technology", "", "Production technology")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&dependsOn, "depends-on", nil, "Tiles that must be finished first")

	return cmd
}

func newTileListCmd(app *App) *cobra.Command {
	var project, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var filter repository.TileFilter
			if project != "" {
				id, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				filter.ProjectID = id
			}
			if status != "" {
				st, err := domain.ParseTileStatus(status)
				if err != nil {
					return err
				}
				filter.Status = st
			}

			tiles, err := app.Tiles.List(ctx, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTileList(tiles))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only tiles of this project")
	cmd.Flags().StringVar(&status, "status", "", "Only tiles in this status")

	return cmd
}

func newTileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show tile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tileID, err := resolveTileID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tiles.GetByID(ctx, tileID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTileDetail(t))
			return nil
		},
	}
}

func newTileMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Request a tile status change",
		Long: `Request a tile status change.

Entering a design, cutting or assembly status books the phase on the
configured resource's calendar. Entering cutting reserves stock for the
tile's BOM and raises purchase requests for anything missing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tileID, err := resolveTileID(ctx, app, args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseTileStatus(args[1])
			if err != nil {
				return err
			}

			res, err := app.Workflow.RequestTransition(ctx, tileID, to)
			if err != nil {
				if t, getErr := app.Tiles.GetByID(ctx, tileID); getErr == nil {
					return withAllowedTileStatuses(err, t.Status)
				}
				return err
			}

			view := formatter.TransitionView{
				Tile:       res.Tile,
				From:       res.From,
				Phase:      res.Phase,
				ResourceID: res.ResourceID,
				Placed:     res.Placed,
			}
			if res.Production != nil {
				view.Reserved = len(res.Production.Reservations)
				view.Requested = len(res.Production.Requests)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTransition(view))
			return nil
		},
	}
}

func newTileBOMCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bom",
		Short: "Edit a tile's bill of materials",
	}
	cmd.AddCommand(newTileBOMAddCmd(app))
	return cmd
}

func newTileBOMAddCmd(app *App) *cobra.Command {
	var name, unit, lineType, supplier, material string
	var qty, unitCost float64

	cmd := &cobra.Command{
		Use:   "add TILE",
		Short: "Append a line to a tile's BOM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tileID, err := resolveTileID(ctx, app, args[0])
			if err != nil {
				return err
			}

			line := domain.BOMLine{
				Type:       domain.BOMLineType(lineType),
				Name:       name,
				Quantity:   qty,
				Unit:       unit,
				Status:     domain.BOMUnknown,
				Supplier:   supplier,
				MaterialID: material,
			}
			if cmd.Flags().Changed("unit-cost") {
				line.UnitCost = &unitCost
			}

			t, err := app.Tiles.AddBOMLine(ctx, tileID, line)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s to %s (material cost %.2f)\n",
				formatter.FormatQuantity(qty), unit, name, t.Name, t.MaterialCost())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Material name")
	cmd.Flags().Float64Var(&qty, "qty", 0, "Quantity")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit (e.g. m2, szt)")
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "Cost per unit")
	cmd.Flags().StringVar(&lineType, "type", string(domain.BOMRawMaterial), "Line type")
	cmd.Flags().StringVar(&supplier, "supplier", "", "Supplier")
	cmd.Flags().StringVar(&material, "material", "", "Linked stock material ID")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("qty")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newTileDependCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "depend TILE PREREQUISITE",
		Short: "Require PREREQUISITE to be finished before TILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tileID, err := resolveTileID(ctx, app, args[0])
			if err != nil {
				return err
			}
			prereqID, err := resolveTileID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tiles.AddDependency(ctx, tileID, prereqID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now depends on %s\n", tileID, prereqID)
			return nil
		},
	}
}

func newTileRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a tile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tileID, err := resolveTileID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tiles.Delete(ctx, tileID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed tile %s\n", tileID)
			return nil
		},
	}
}
