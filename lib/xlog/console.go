package xlog

import (
	"io"
	"io/ioutil"
	"os"
	"sync"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// ConsoleLogger returns logger which discards everything except events
// at or above consoleLevel, which are printed to stderr
func ConsoleLogger(consoleLevel logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Level = logrus.DebugLevel
	log.Out = ioutil.Discard
	log.Hooks.Add(&consoleHook{out: os.Stderr, level: consoleLevel, formatter: newFormatter()})
	return log
}

// WriterLogger returns logger which writes events at or above level to w.
// Suites pass ginkgo.GinkgoWriter so that output is only shown for failed specs
func WriterLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Level = level
	log.Out = w
	log.Formatter = newFormatter()
	return log
}

func newFormatter() logrus.Formatter {
	return &trace.TextFormatter{}
}

type consoleHook struct {
	mu        sync.Mutex
	out       io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

// Fire writes entries at or above the hook level to the console
func (hook *consoleHook) Fire(e *logrus.Entry) error {
	if e.Level > hook.level {
		return nil
	}
	line, err := hook.formatter.Format(e)
	if err != nil {
		return trace.Wrap(err)
	}
	hook.mu.Lock()
	defer hook.mu.Unlock()
	_, err = hook.out.Write(line)
	return trace.ConvertSystemError(err)
}

// Levels returns logging levels supported by logrus
func (hook *consoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
