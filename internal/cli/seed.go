package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the player catalog",
		Long:  `Seed the player catalog with generated players. Does nothing if players already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SeedResult

			if err := client.Post("/api/v1/seed-players", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
