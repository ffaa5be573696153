package framework

import (
	"context"
	"fmt"
	"os"

	"github.com/satelliteqe/robotest/lib/api"
	"github.com/satelliteqe/robotest/lib/config"
	"github.com/satelliteqe/robotest/lib/datafactory"
	"github.com/satelliteqe/robotest/lib/defaults"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"
	"github.com/satelliteqe/robotest/lib/xlog"

	"github.com/gravitational/trace"
	"github.com/hashicorp/go-version"
	. "github.com/onsi/ginkgo"
	"github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// TestContext is shared by the specs of a suite. Setup populates it
var TestContext TestContextType

// TestContextType groups the configuration and API access of a test run
type TestContextType struct {
	Settings *config.Settings
	// Client is the API client authenticated as admin
	Client *api.Client
	// Entities creates and manages server entities as admin
	Entities *entities.Service
	// Data generates datapoint lists
	Data *datafactory.Factory
	// RunID identifies the test run
	RunID string
	// ServerVersion is the version of the server under test
	ServerVersion *version.Version
	// Logger writes to the ginkgo writer so output is shown for failed specs only
	Logger log.FieldLogger
}

// Configured returns true if a settings file has been specified
func Configured() bool {
	return os.Getenv(defaults.ConfigEnv) != ""
}

// Setup loads the settings and connects to the server
func Setup() error {
	settings, err := config.FromEnv()
	if err != nil {
		return trace.Wrap(err)
	}
	client, err := api.New(api.ConfigFromSettings(*settings))
	if err != nil {
		return trace.Wrap(err)
	}
	gen := faux.Default()
	logger := xlog.WriterLogger(GinkgoWriter, log.GetLevel())
	TestContext = TestContextType{
		Settings: settings,
		Client:   client,
		Entities: entities.NewService(client, gen),
		Data:     datafactory.New(gen, settings.Robottelo.RunOneDatapoint),
		RunID:    uuid.NewV4().String(),
	}
	TestContext.Logger = logger.WithField("run", TestContext.RunID)
	TestContext.Entities.FieldLogger = TestContext.Logger.WithField(trace.Component, "entities")
	TestContext.ServerVersion, err = serverVersion(client, settings.Server)
	if err != nil {
		return trace.Wrap(err)
	}
	TestContext.Logger.Infof("testing %v, version %v",
		settings.Server.URL(), TestContext.ServerVersion)
	return nil
}

// Teardown releases the browser if one was started
func Teardown() error {
	return trace.Wrap(stopDriver())
}

func serverVersion(client *api.Client, server config.Server) (*version.Version, error) {
	if server.Version != "" {
		v, err := version.NewVersion(server.Version)
		if err != nil {
			return nil, trace.BadParameter("invalid server version %q: %v", server.Version, err)
		}
		return v, nil
	}
	ctx, cancel := NewContext()
	defer cancel()
	status, err := client.Status(ctx)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return status.ServerVersion()
}

// NewContext returns a context bounding the API calls of one spec
func NewContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaults.SpecTimeout)
}

// RunPrefix starts the names of entities created in this run
func (r TestContextType) RunPrefix() string {
	id := r.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%v-%v", defaults.RunPrefix, id)
}

// UniqueName returns a name carrying the run prefix
func UniqueName() string {
	suffix := faux.Default().MustString(faux.Alphanumeric, 6)
	return fmt.Sprintf("%v-%v", TestContext.RunPrefix(), suffix)
}

// NewOrganization returns an organization named after the run so that
// purge finds it
func NewOrganization() *orm.Entity {
	return entities.Organization.New().MustSet("name", UniqueName())
}
