package wait

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/satelliteqe/robotest/lib/defaults"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Abort causes Retry function to stop with error
func Abort(err error) AbortRetry {
	return AbortRetry{Err: err}
}

// Continue causes Retry function to continue trying and logging message
func Continue(format string, args ...interface{}) ContinueRetry {
	message := fmt.Sprintf(format, args...)
	return ContinueRetry{Message: message}
}

// AbortRetry if returned from Retry, will lead to retries to be stopped,
// but the Retry function will return internal Error
type AbortRetry struct {
	Err error
}

func (r AbortRetry) Error() string {
	return fmt.Sprintf("Abort(%v)", r.Err)
}

// ContinueRetry if returned from Retry, will be lead to retry next time
type ContinueRetry struct {
	Message string
}

func (r ContinueRetry) Error() string {
	return fmt.Sprintf("ContinueRetry(%v)", r.Message)
}

// Retry attempts to execute fn with default delay retrying it for a default number of attempts.
// fn can return AbortRetry to abort or ContinueRetry to continue the execution.
func Retry(ctx context.Context, fn func() error) error {
	r := Retryer{
		Delay:    defaults.RetryDelay,
		Attempts: defaults.RetryAttempts,
	}
	return r.Do(ctx, fn)
}

// Retryer is a process that can retry a function
type Retryer struct {
	// Delay specifies the interval between retry attempts
	Delay time.Duration
	// MaxDelay caps the exponential growth of Delay.
	// Defaults to defaults.RetryMaxDelay
	MaxDelay time.Duration
	// Attempts specifies the number of attempts to execute before failing.
	// Should be >= 1, zero value is not useful
	Attempts int
	// FieldLogger specifies the log sink
	log.FieldLogger
}

// Do retries the given function fn for the configured number of attempts until it succeeds
// or all attempts have been exhausted
func (r Retryer) Do(ctx context.Context, fn func() error) (err error) {
	if r.FieldLogger == nil {
		r.FieldLogger = log.NewEntry(log.StandardLogger())
	}
	if r.MaxDelay == 0 {
		r.MaxDelay = defaults.RetryMaxDelay
	}
	if r.Attempts < 1 {
		return trace.BadParameter("retry attempts must be >= 1, got %v", r.Attempts)
	}

	if ctx.Err() != nil {
		return trace.Wrap(ctx.Err())
	}

	for i := 1; i <= r.Attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		delay := r.backoff(i)
		le := r.FieldLogger
		if deadline, ok := ctx.Deadline(); ok {
			le = le.WithField("timeout-in", fmt.Sprintf("%v", time.Until(deadline)))
		}
		switch origErr := err.(type) {
		case AbortRetry:
			le.WithError(origErr.Err).Debug("aborted")
			return origErr.Err
		case ContinueRetry:
			le.Debugf("%v, retry in %v", origErr.Message, delay)
		default:
			le.Debugf("unsuccessful attempt %v: %v, retry in %v", i, trace.UserMessage(err), delay)
		}

		if i == r.Attempts {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			le.Debug("context done")
			return trace.Wrap(err)
		}
	}
	return trace.LimitExceeded("all %v attempts failed: %v", r.Attempts, trace.UserMessage(err))
}

func (r Retryer) backoff(errCount int) time.Duration {
	delay := r.Delay * time.Duration(math.Pow(2, float64(errCount)-1))
	if delay > r.MaxDelay || delay <= 0 {
		return r.MaxDelay
	}
	return delay
}

// Until polls cond every interval until it reports true, returns an error,
// or the timeout elapses. An expired timeout is reported as trace.LimitExceeded.
func Until(ctx context.Context, timeout, interval time.Duration, cond func() (bool, error)) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		done, err := cond()
		if err != nil {
			return trace.Wrap(err)
		}
		if done {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return trace.LimitExceeded("condition not met within %v", timeout)
		}
	}
}
