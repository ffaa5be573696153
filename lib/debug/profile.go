// Package debug provides runtime diagnostics for the robotest tool
package debug

import (
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// StartProfiling serves the pprof endpoints on addr until the process exits.
// It returns once the listener is bound
func StartProfiling(addr string) (net.Addr, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	logger := log.WithField(trace.Component, "debug")
	logger.Infof("profiling on http://%v/debug/pprof", listener.Addr())
	go func() {
		if err := http.Serve(listener, nil); err != nil {
			logger.WithError(err).Warn("profiling endpoint stopped")
		}
	}()
	return listener.Addr(), nil
}
