package xlog

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestingHook forwards log entries to the test log
type TestingHook struct {
	t testing.TB
}

func (hook *TestingHook) Fire(e *logrus.Entry) error {
	if len(e.Data) == 0 {
		hook.t.Log(e.Message)
		return nil
	}
	hook.t.Log(e.Message, fmt.Sprint(e.Data))
	return nil
}

// Levels returns logging levels supported by logrus
func (hook *TestingHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// NewLogger returns logger which prints errors to console and
// everything to the test log
func NewLogger(t testing.TB, commonFields logrus.Fields) logrus.FieldLogger {
	log := ConsoleLogger(logrus.ErrorLevel)
	log.Hooks.Add(&TestingHook{t})
	return log.WithFields(commonFields)
}
