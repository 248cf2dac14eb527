package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Fantasy roster commands",
	}

	cmd.AddCommand(newRosterShowCmd())
	cmd.AddCommand(newRosterSaveCmd())

	return cmd
}

func newRosterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your current roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster

			if err := client.Get("/api/v1/roster", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterSaveCmd() *cobra.Command {
	var setter, oh, opp, mb, libero, ds string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a full six-position roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if setter == "" || oh == "" || opp == "" || mb == "" || libero == "" || ds == "" {
				return fmt.Errorf("all six position flags are required")
			}

			req := map[string]string{
				"setter":               setter,
				"outside_hitter":       oh,
				"opposite_hitter":      opp,
				"middle_blocker":       mb,
				"libero":               libero,
				"defensive_specialist": ds,
			}
			var result SaveRosterResult

			if err := client.Post("/api/v1/roster", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&setter, "setter", "", "Setter player id (required)")
	cmd.Flags().StringVar(&oh, "oh", "", "Outside hitter player id (required)")
	cmd.Flags().StringVar(&opp, "opp", "", "Opposite hitter player id (required)")
	cmd.Flags().StringVar(&mb, "mb", "", "Middle blocker player id (required)")
	cmd.Flags().StringVar(&libero, "libero", "", "Libero player id (required)")
	cmd.Flags().StringVar(&ds, "ds", "", "Defensive specialist player id (required)")
	_ = cmd.MarkFlagRequired("setter")
	_ = cmd.MarkFlagRequired("oh")
	_ = cmd.MarkFlagRequired("opp")
	_ = cmd.MarkFlagRequired("mb")
	_ = cmd.MarkFlagRequired("libero")
	_ = cmd.MarkFlagRequired("ds")

	return cmd
}
