package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/trade-journal/models"
)

// todayArg may be given instead of a YYYY-MM-DD date.
const todayArg = "today"

func (a *App) newLayoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the journal grid columns and bar rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := a.adapter.GetLayout(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting layout: %w", err)
			}

			printLayout(cmd.OutOrStdout(), layout)
			return nil
		},
	}
}

func (a *App) newDaysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the trading days that have labels, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, err := a.adapter.ListDays(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing days: %w", err)
			}

			if len(days) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no journal days yet")
				return nil
			}
			for _, day := range days {
				fmt.Fprintln(cmd.OutOrStdout(), day)
			}
			return nil
		},
	}
}

func (a *App) newShowCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show <date>",
		Short: "Print the labelled bars of a trading day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			day, err := a.adapter.GetDay(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("error getting day %s: %w", date, err)
			}

			printDay(cmd.OutOrStdout(), day, all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also print bars without labels")

	return cmd
}

func (a *App) newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set <date> <bar> <kind> <label>...",
		Short:   "Replace all labels of a cell",
		Example: `  journal set today 7 bull "Gap up" "Trend bar"`,
		Args:    cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.parseCellKey(args[:3])
			if err != nil {
				return err
			}

			cell, err := a.adapter.SetLabels(cmd.Context(), key, args[3:])
			if err != nil {
				return fmt.Errorf("error setting labels: %w", err)
			}

			printCell(cmd.OutOrStdout(), cell)
			return nil
		},
	}
}

func (a *App) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <date> <bar> <kind> <label>",
		Short:   "Append a label to a cell",
		Long:    "Append a label to a cell. Extra words are joined into one label; a label already in the cell is kept once.",
		Example: "  journal add 2026-10-16 RTH bias Bull bias",
		Args:    cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, label, err := a.parseCellLabel(args)
			if err != nil {
				return err
			}

			cell, err := a.adapter.AddLabel(cmd.Context(), key, label)
			if err != nil {
				return fmt.Errorf("error adding label: %w", err)
			}

			printCell(cmd.OutOrStdout(), cell)
			return nil
		},
	}
}

func (a *App) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <date> <bar> <kind> <label>",
		Short: "Remove one label from a cell",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, label, err := a.parseCellLabel(args)
			if err != nil {
				return err
			}

			cell, err := a.adapter.RemoveLabel(cmd.Context(), key, label)
			if err != nil {
				return fmt.Errorf("error removing label: %w", err)
			}

			printCell(cmd.OutOrStdout(), cell)
			return nil
		},
	}
}

func (a *App) newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <date> <bar> <kind>",
		Short: "Remove every label from a cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.parseCellKey(args)
			if err != nil {
				return err
			}

			if err = a.adapter.ClearCell(cmd.Context(), key); err != nil {
				return fmt.Errorf("error clearing cell: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s %s %s\n", key.Date, key.Bar, key.Kind)
			return nil
		},
	}
}

func (a *App) newDeleteDayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-day <date>",
		Short: "Remove every label of a trading day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			if err = a.adapter.DeleteDay(cmd.Context(), date); err != nil {
				return fmt.Errorf("error deleting day %s: %w", date, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", date)
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "client: %s\n", a.buildInfo)

			serverVersion, err := a.adapter.GetVersion(cmd.Context())
			if err != nil {
				a.logger.Debug().Err(err).Msg("server version unavailable")
				fmt.Fprintln(out, "server: unavailable")
				return nil
			}

			fmt.Fprintf(out, "server: %s\n", serverVersion)
			return nil
		},
	}
}

// parseDate accepts YYYY-MM-DD or "today".
func (a *App) parseDate(arg string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(arg), todayArg) {
		return a.now().Format(models.TradeDateLayout), nil
	}
	return models.ParseTradeDate(strings.TrimSpace(arg))
}

// parseCellKey reads <date> <bar> <kind>.
func (a *App) parseCellKey(args []string) (models.CellKey, error) {
	date, err := a.parseDate(args[0])
	if err != nil {
		return models.CellKey{}, err
	}

	bar := strings.ToUpper(strings.TrimSpace(args[1]))
	if !models.IsValidBar(bar) {
		return models.CellKey{}, fmt.Errorf("invalid bar %q: want RTH, ETH or 1..%d", args[1], models.BarsPerSession)
	}

	kind, err := models.ParseKind(args[2])
	if err != nil {
		return models.CellKey{}, err
	}

	return models.CellKey{Date: date, Bar: bar, Kind: kind}, nil
}

// parseCellLabel reads <date> <bar> <kind> followed by a label that may span
// several arguments.
func (a *App) parseCellLabel(args []string) (models.CellKey, string, error) {
	key, err := a.parseCellKey(args[:3])
	if err != nil {
		return models.CellKey{}, "", err
	}

	label := strings.TrimSpace(strings.Join(args[3:], " "))
	if label == "" {
		return models.CellKey{}, "", ErrEmptyLabel
	}

	return key, label, nil
}
