package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dasdy/swipe/cmd/swipe"
	"github.com/dasdy/swipe/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	slog.SetDefault(slog.New(logging.ContextHandler{
		Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelDebug),
			slogor.SetTimeFormat(time.DateTime),
			slogor.ShowSource()),
	}))

	swipe.Execute()
}
