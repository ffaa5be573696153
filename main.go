package main

import (
	"context"
	"os"
	"strings"

	"github.com/satelliteqe/robotest/lib/config"
	"github.com/satelliteqe/robotest/lib/debug"
	"github.com/satelliteqe/robotest/lib/defaults"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/robotest"
	"github.com/satelliteqe/robotest/lib/xlog"

	"github.com/gravitational/configure/cstrings"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(); err != nil {
		log.Error(trace.DebugReport(err))
		os.Exit(255)
	}
}

func run() error {
	args, _ := cstrings.SplitAt(os.Args, "--")

	var (
		app        = kingpin.New("robotest", "Satellite test suite tooling")
		debugMode  = app.Flag("debug", "enable debug logging").Bool()
		profile    = app.Flag("httpprofile", "serve pprof endpoints on this address").String()
		configPath = app.Flag("config", "settings file").Envar(defaults.ConfigEnv).String()

		cstatus = app.Command("status", "show the version of the server")

		cdatapoints     = app.Command("datapoints", "print a generated datapoint list")
		cdatapointsKind = cdatapoints.Arg("kind", strings.Join(robotest.DatapointKinds, ", ")).Required().
				Enum(robotest.DatapointKinds...)
		cdatapointsSeed = cdatapoints.Flag("seed", "random seed").Default("1").Int64()
		cdatapointsOne  = cdatapoints.Flag("one", "reduce the list to a single datapoint").Bool()

		cpurge       = app.Command("purge", "delete organizations left over by test runs")
		cpurgePrefix = cpurge.Flag("prefix", "organization name prefix").Default(defaults.RunPrefix).String()
		cpurgeDryRun = cpurge.Flag("dry-run", "list the organizations without deleting them").Bool()
	)

	cmd, err := app.Parse(args[1:])
	if err != nil {
		return trace.Wrap(err)
	}

	level := log.InfoLevel
	if *debugMode {
		level = log.DebugLevel
	}
	logger := xlog.ConsoleLogger(level)

	if *profile != "" {
		if _, err := debug.StartProfiling(*profile); err != nil {
			return trace.Wrap(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.WatchInterrupts(ctx, cancel, os.Stderr)

	switch cmd {
	case cstatus.FullCommand():
		svc, err := connect(*configPath, logger)
		if err != nil {
			return trace.Wrap(err)
		}
		return robotest.Status(ctx, svc.Client, os.Stdout)
	case cdatapoints.FullCommand():
		return robotest.Datapoints(*cdatapointsKind, *cdatapointsSeed, *cdatapointsOne, os.Stdout)
	case cpurge.FullCommand():
		svc, err := connect(*configPath, logger)
		if err != nil {
			return trace.Wrap(err)
		}
		return robotest.Purge(ctx, svc, *cpurgePrefix, *cpurgeDryRun, os.Stdout)
	}

	return nil
}

func connect(path string, logger log.FieldLogger) (*entities.Service, error) {
	if path == "" {
		return nil, trace.BadParameter("missing --config or %v", defaults.ConfigEnv)
	}
	settings, err := config.LoadFile(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	svc, err := robotest.Connect(*settings)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	svc.FieldLogger = logger.WithField(trace.Component, "entities")
	return svc, nil
}
