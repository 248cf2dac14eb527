package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player catalog commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	var position, search, sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog players",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if position != "" {
				q.Set("position", position)
			}
			if search != "" {
				q.Set("search", search)
			}
			if sortBy != "" {
				q.Set("sortBy", sortBy)
			}

			path := "/api/v1/players"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Filter by position code (S, OH, OPP, MB, L, DS)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name substring")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: name, creditCost")

	return cmd
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a single catalog player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
