package wait

import (
	"context"
	"time"

	"github.com/gravitational/trace"
)

// Sleep pauses for d. It returns early with an error if ctx is done first
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return trace.Wrap(ctx.Err(), "interrupted after less than %v", d)
	case <-timer.C:
		return nil
	}
}
