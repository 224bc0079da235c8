package swipe

import (
	"fmt"
	"os"

	"github.com/dasdy/swipe/db"
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge gesture history files into one",
	Long:  `Given a list of history files, create a new one which is just a union of the inputs.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		inputs := make([]db.Storage, len(mergeInputs))

		for i, fn := range mergeInputs {
			store, err := db.ConnectDB(fn)
			if err != nil {
				return err
			}

			defer store.Close()

			inputs[i] = store
		}

		if _, err := os.Stat(mergeOutput); err == nil {
			return fmt.Errorf("output file %s already exists", mergeOutput)
		}

		output, err := db.ConnectDB(mergeOutput)
		if err != nil {
			return err
		}
		defer output.Close()

		return db.Merge(inputs, output)
	},
}

var (
	mergeInputs []string
	mergeOutput string
)

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(
		&mergeInputs,
		"file",
		"f",
		[]string{},
		"List of history files to merge",
	)

	mergeCmd.Flags().StringVarP(
		&mergeOutput,
		"out",
		"o",
		"./merged.sqlite",
		"Output path for the merged history")
}
