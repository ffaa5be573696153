package debug

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// confirmWindow is how long a second interrupt cancels instead of dumping again
const confirmWindow = 2 * time.Second

// WatchInterrupts dumps goroutine stacks to w on an interrupt. A second
// interrupt within confirmWindow calls cancel. The watch ends with ctx
func WatchInterrupts(ctx context.Context, cancel context.CancelFunc, w io.Writer) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		defer signal.Stop(interrupt)
		watch(ctx, interrupt, cancel, w)
	}()
}

func watch(ctx context.Context, interrupt <-chan os.Signal, cancel context.CancelFunc, w io.Writer) {
	logger := log.WithField(trace.Component, "debug")
	var confirm <-chan time.Time
	for {
		select {
		case <-interrupt:
			if confirm != nil {
				logger.Info("interrupted, cancelling")
				cancel()
				return
			}
			fmt.Fprintln(w, "Dumping goroutine stacks. Press Ctrl-C again to quit.")
			if err := pprof.Lookup("goroutine").WriteTo(w, 1); err != nil {
				logger.WithError(err).Warn("failed to dump goroutines")
			}
			confirm = time.After(confirmWindow)
		case <-confirm:
			confirm = nil
		case <-ctx.Done():
			return
		}
	}
}
