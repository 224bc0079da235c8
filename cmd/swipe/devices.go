package swipe

import (
	"fmt"

	"github.com/dasdy/swipe/device"
	"github.com/spf13/cobra"
)

// devicesCmd represents the devices command.
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available input devices",
	Long: `Print every input event node with its advertised name, to help pick
a value for --device-name.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		paths, err := device.List()
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Printf("%s\t%s\n", p.Path, p.Name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
