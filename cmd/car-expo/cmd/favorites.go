package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/carexpo/car-expo/internal/api/client"
)

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the saved-car set",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved car IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListFavorites(cmd.Context())
			if err != nil {
				return err
			}
			return printFavorites(resp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <listing-id>",
		Short: "Save a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().AddFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printFavorites(resp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <listing-id>",
		Short: "Unsave a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().RemoveFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printFavorites(resp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <listing-id>",
		Short: "Flip a car's saved state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			state := "removed"
			if resp.Saved {
				state = "saved"
			}
			fmt.Printf("%s: %s\n", resp.ID, state)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <listing-id>...",
		Short: "Replace the whole saved set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SaveFavorites(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printFavorites(resp)
		},
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(favoritesCmd())
}

func printFavorites(resp *apiclient.FavoritesResponse) error {
	if jsonOutput() {
		return outputJSON(resp)
	}
	for _, id := range resp.Favorites {
		fmt.Println(id)
	}
	fmt.Printf("%d saved\n", resp.Total)
	return nil
}
