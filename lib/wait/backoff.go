package wait

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// RetryWithInterval retries fn with intervals provided by b until fn succeeds,
// returns AbortRetry, the context is done or b stops.
// A stopped b is reported as trace.LimitExceeded
func RetryWithInterval(ctx context.Context, b backoff.BackOff, fn func() error, logger log.FieldLogger) error {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	var aborted error
	var last error
	err := backoff.RetryNotify(func() error {
		err := fn()
		if abort, ok := err.(AbortRetry); ok {
			aborted = abort.Err
			return nil
		}
		last = err
		return err
	}, backoff.WithContext(b, ctx), func(err error, d time.Duration) {
		logger.Debugf("%v, retry in %v", trace.UserMessage(err), d)
	})
	if aborted != nil {
		return aborted
	}
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return trace.Wrap(last)
	}
	return trace.LimitExceeded("gave up retrying: %v", trace.UserMessage(last))
}

// NewExponentialBackOff returns an exponential backoff starting at interval,
// capped at maxInterval and giving up after timeout
func NewExponentialBackOff(interval, maxInterval, timeout time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = maxInterval
	b.MaxElapsedTime = timeout
	b.Reset()
	return b
}
