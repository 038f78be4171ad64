package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/trade-journal/internal/presets"
	"github.com/MKhiriev/trade-journal/models"
)

func (a *App) newPresetsCommand() *cobra.Command {
	var (
		kind  string
		local bool
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Print the quick-pick labels and where they came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.loadPresets(cmd.Context(), local)
			if err != nil {
				return err
			}

			kinds := models.Kinds
			if kind != "" {
				k, err := models.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []models.Kind{k}
			}

			printPresets(cmd.OutOrStdout(), resp, kinds)
			return nil
		},
	}
	cmd.PersistentFlags().BoolVar(&local, "local", false, "resolve the presets file locally instead of asking the server")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only print one kind: bull, bear, tr or bias")

	cmd.AddCommand(a.newPresetsCopyCommand(&local), a.newPresetsWhereCommand(&local))

	return cmd
}

func (a *App) newPresetsCopyCommand(local *bool) *cobra.Command {
	return &cobra.Command{
		Use:     "copy <kind> <n>",
		Short:   "Copy the n-th preset label of a kind to the clipboard",
		Example: "  journal presets copy bull 2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid preset index %q: %w", args[1], err)
			}

			resp, err := a.loadPresets(cmd.Context(), *local)
			if err != nil {
				return err
			}

			labels := resp.Labels(kind)
			if n < 1 || n > len(labels) {
				return fmt.Errorf("%w: %s has %d labels", ErrPresetIndexOutOfRange, kind.Column(), len(labels))
			}

			label := labels[n-1]
			if err = a.copyToClip(label); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "copied: %s\n", label)
			return nil
		},
	}
}

func (a *App) newPresetsWhereCommand(local *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "List every presets location searched, in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var report models.ResolutionResponse
			if *local {
				report = a.resolveLocal().Report()
			} else {
				var err error
				if report, err = a.adapter.GetResolution(cmd.Context()); err != nil {
					return fmt.Errorf("error getting presets resolution: %w", err)
				}
			}

			printResolution(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// loadPresets asks the server, or resolves the file locally.
func (a *App) loadPresets(ctx context.Context, local bool) (models.PresetsResponse, error) {
	if local {
		res := a.resolveLocal()
		return models.PresetsResponse{
			PresetSet: res.Set,
			Origin:    res.Origin.String(),
			Defaulted: res.Defaulted,
		}, nil
	}

	resp, err := a.adapter.GetPresets(ctx)
	if err != nil {
		return models.PresetsResponse{}, fmt.Errorf("error getting presets: %w", err)
	}
	return resp, nil
}

func (a *App) resolveLocal() presets.Resolution {
	return presets.NewResolver(a.cfg.Presets, a.logger).Resolve(presets.DefaultName)
}
