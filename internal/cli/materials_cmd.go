package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli/formatter"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

func newMaterialsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "materials",
		Aliases: []string{"mat"},
		Short:   "Material requirements, costs, stock and purchasing",
	}

	cmd.AddCommand(
		newMaterialsSummaryCmd(app),
		newMaterialsCostsCmd(app),
		newStockCmd(app),
		newMaterialsRequestsCmd(app),
		newMaterialsReservationsCmd(app),
	)

	return cmd
}

func newMaterialsSummaryCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate BOM lines by material",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var projectID string
			if project != "" {
				id, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				projectID = id
			}

			summary, err := app.Materials.Summary(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMaterialSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only tiles of this project (default all)")

	return cmd
}

func newMaterialsCostsCmd(app *App) *cobra.Command {
	var margin, discount, vat float64

	cmd := &cobra.Command{
		Use:   "costs PROJECT",
		Short: "Estimate a project's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			opts := app.Costs
			for _, o := range []struct {
				name  string
				value float64
				dst   *decimal.Decimal
			}{
				{"margin", margin, &opts.MarginPercent},
				{"discount", discount, &opts.DiscountPercent},
				{"vat", vat, &opts.VATPercent},
			} {
				if err := overridePercent(cmd.Flags(), o.name, o.value, o.dst); err != nil {
					return err
				}
			}

			est, err := app.Materials.EstimateCosts(ctx, projectID, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCostEstimate(est, opts))
			return nil
		},
	}

	cmd.Flags().Float64Var(&margin, "margin", 0, "Margin percent (default from config)")
	cmd.Flags().Float64Var(&discount, "discount", 0, "Discount percent (default from config)")
	cmd.Flags().Float64Var(&vat, "vat", 0, "VAT percent (default from config)")

	return cmd
}

// overridePercent replaces dst only when the flag was given explicitly, so
// a literal 0 still overrides the configured value.
func overridePercent(flags *pflag.FlagSet, name string, value float64, dst *decimal.Decimal) error {
	if !flags.Changed(name) {
		return nil
	}
	if !domain.IsFinite(value) || value < 0 {
		return fmt.Errorf("--%s must be a non-negative number, got %g", name, value)
	}
	if name == "discount" && value > 100 {
		return fmt.Errorf("--discount must not exceed 100, got %g", value)
	}
	*dst = decimal.NewFromFloat(value)
	return nil
}

func newStockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage warehouse stock",
	}
	cmd.AddCommand(newStockSetCmd(app), newStockListCmd(app))
	return cmd
}

func newStockSetCmd(app *App) *cobra.Command {
	var name, unit string
	var stock, price float64

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Create or update a stock material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.StockMaterial{ID: args[0], Name: name, Unit: unit, Stock: stock, Price: price}
			if err := app.Materials.SetStock(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stock of %s set to %s %s\n", m.Name, formatter.FormatQuantity(m.Stock), m.Unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Material name")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit")
	cmd.Flags().Float64Var(&stock, "stock", 0, "Quantity on hand")
	cmd.Flags().Float64Var(&price, "price", 0, "Price per unit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newStockListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List warehouse stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := app.Materials.ListStock(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStockList(stock))
			return nil
		},
	}
}

func newMaterialsRequestsCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List purchase requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := app.Materials.ListPurchaseRequests(cmd.Context(), domain.PurchaseRequestStatus(status))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPurchaseRequests(requests))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(domain.PurchasePending), "Request status (pending, ordered, received; empty for all)")

	return cmd
}

func newMaterialsReservationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reservations PROJECT",
		Short: "List stock reserved for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			reservations, err := app.Materials.ListReservations(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReservations(reservations))
			return nil
		},
	}
}
