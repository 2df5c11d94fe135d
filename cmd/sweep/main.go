// Command sweep raises pattern-signal alerts for every subject whose open
// contradictions have stayed unresolved past the staleness window. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine. SWEEP_ACTOR_ID names the service account the alerts are
// recorded under.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fordrm/the-a-team-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunSweep(ctx); err != nil {
		slog.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
