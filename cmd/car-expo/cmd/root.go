// Package cmd implements the car-expo CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/carexpo/car-expo/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "car-expo",
		Short: "Discover and rate used car listings",
		Long: "car-expo serves a car discovery API: it rates listings across\n" +
			"seven factors, estimates market value, parses natural-language\n" +
			"search queries, and tracks a swipeable deck with saved favorites.",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (defaults built in when unset)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	viper.SetEnvPrefix("CAREXPO")
	viper.AutomaticEnv()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
