package swipe

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dasdy/swipe/db"
	"github.com/dasdy/swipe/device"
	"github.com/dasdy/swipe/gesture"
	"github.com/dasdy/swipe/web"
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Listen to the mouse and inject gesture shortcuts",
	Long: `Find the pointer device by name, create a virtual keyboard, and run
until interrupted. Gestures are logged to a sqlite file, and a web server
shows the collected history unless disabled.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		path, err := device.Find(device.List, deviceName)
		if err != nil {
			if !waitForDevice {
				return fmt.Errorf("could not find pointer device (try 'swipe devices', or --wait): %w", err)
			}

			slog.Info("Device not present, waiting for it to appear", "name", deviceName)

			path, err = device.WaitFor(ctx, device.List, deviceName)
			if err != nil {
				return fmt.Errorf("waiting for pointer device: %w", err)
			}
		}

		slog.Info("Found pointer device", "path", path)

		src, err := device.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		kbd, err := device.NewKeyboard()
		if err != nil {
			return err
		}

		defer func() {
			if err := kbd.Close(); err != nil {
				slog.Error("Could not close virtual keyboard", "error", err)
			} else {
				slog.Info("Virtual keyboard device closed")
			}
		}()

		slog.Info("Output file", "path", storagePath)

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		if !disableInterface {
			go func() {
				if err := web.StartServer(port, storage); err != nil {
					slog.Error("Web server died", "error", err)
				}
			}()
		}

		slog.Info("Monitoring mouse events, press Ctrl+C to stop", "device", path)

		return gesture.Loop(ctx, src, kbd, storage, gesture.NewEngine(), verbose)
	},
}

var (
	deviceName       string
	storagePath      string
	port             int
	disableInterface bool
	verbose          bool
	waitForDevice    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(
		&deviceName,
		"device-name",
		"d",
		"Logitech USB Receiver Mouse",
		"Substring of the pointer device name to attach to")

	runCmd.Flags().StringVarP(
		&storagePath,
		"out",
		"o",
		"./gestures.sqlite",
		"Output path for gesture history")

	runCmd.Flags().IntVarP(
		&port, "port", "p", 9876,
		"Port on which server should be watching")

	runCmd.Flags().BoolVar(&disableInterface,
		"no-interface",
		false,
		"If provided, no web server will be run with the history")

	runCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, every classified gesture will be logged")

	runCmd.Flags().BoolVar(&waitForDevice,
		"wait",
		false,
		"Wait for the device to appear instead of failing when it is absent")
}
