package swipe

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/swipe/db"
	"github.com/dasdy/swipe/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:              "show",
	Short:            "Show collected gesture history",
	Long:             `Use history collected by the run command to show a web interface with statistics.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		slog.Info("Config", "file", viper.ConfigFileUsed(), "storage", showStoragePath)

		storage, err := db.ConnectDB(showStoragePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", showStoragePath, err)
		}
		defer storage.Close()

		return web.StartServer(showPort, storage)
	},
}

var (
	showStoragePath string
	showPort        int
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&showPort, "port", "p", 9876,
		"Port on which server should be watching")

	showCmd.Flags().StringVarP(
		&showStoragePath,
		"storage",
		"s",
		"./gestures.sqlite",
		"Path to the gesture history file")
}
