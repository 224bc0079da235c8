package db

import (
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// Merge unions every input history into output, keeping original timestamps.
func Merge(inputs []Storage, output Storage) error {
	bar := progressbar.Default(-1, "Merging history...")

	for _, input := range inputs {
		items, err := input.AllIterator()
		if err != nil {
			return err
		}

		for item := range items {
			if err := bar.Add(1); err != nil {
				slog.Error("could not update progress bar", "error", err)
			}

			if err := output.StoreAt(&item.Gesture, item.Timestamp); err != nil {
				return err
			}
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return nil
}
