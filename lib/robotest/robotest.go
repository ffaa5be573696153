// Package robotest implements the commands of the robotest tool: checking
// the server, listing generated datapoints and purging leftover entities
package robotest

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/satelliteqe/robotest/lib/api"
	"github.com/satelliteqe/robotest/lib/config"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/datafactory"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/faux"

	"github.com/gosuri/uitable"
	"github.com/gravitational/trace"
)

// maxColWidth bounds the value column of printed tables
const maxColWidth = 80

// Connect returns an entity service for the server of settings
func Connect(settings config.Settings) (*entities.Service, error) {
	client, err := api.New(api.ConfigFromSettings(settings))
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return entities.NewService(client, nil), nil
}

// Status prints the version and API version of the server
func Status(ctx context.Context, client *api.Client, w io.Writer) error {
	status, err := client.Status(ctx)
	if err != nil {
		return trace.Wrap(err)
	}
	v, err := status.ServerVersion()
	if err != nil {
		return trace.Wrap(err)
	}
	table := uitable.New()
	table.AddRow("Server:", client.Endpoint("", nil))
	table.AddRow("Version:", v.String())
	table.AddRow("API version:", status.APIVersion)
	_, err = fmt.Fprintln(w, table)
	return trace.ConvertSystemError(err)
}

// DatapointKinds lists the datapoint lists Datapoints can print
var DatapointKinds = []string{
	"valid", "invalid-names", "invalid-api", "invalid-ui",
	"sync-intervals", "invalid-sync-intervals",
}

// Datapoints prints the datapoint list of kind generated with seed
func Datapoints(kind string, seed int64, oneDatapoint bool, w io.Writer) error {
	f := datafactory.New(faux.New(seed), oneDatapoint)
	var values []string
	switch kind {
	case "valid":
		values = f.ValidDataList()
	case "invalid-names":
		values = f.InvalidNamesList()
	case "invalid-api":
		values = f.InvalidValuesList(constants.InterfaceAPI)
	case "invalid-ui":
		values = f.InvalidValuesList(constants.InterfaceUI)
	case "sync-intervals":
		values = f.ValidSyncIntervals()
	case "invalid-sync-intervals":
		values = f.InvalidSyncIntervals()
	default:
		return trace.BadParameter("unknown datapoint kind %q, expected one of %v",
			kind, strings.Join(DatapointKinds, ", "))
	}
	table := uitable.New()
	table.MaxColWidth = maxColWidth
	table.AddRow("#", "LENGTH", "VALUE")
	for i, value := range values {
		table.AddRow(i+1, utf8.RuneCountInString(value), fmt.Sprintf("%q", value))
	}
	_, err := fmt.Fprintln(w, table)
	return trace.ConvertSystemError(err)
}

// Purge deletes the organizations whose name starts with prefix, along
// with the content they hold. Nothing is deleted on a dry run
func Purge(ctx context.Context, svc *entities.Service, prefix string, dryRun bool, w io.Writer) error {
	if prefix == "" {
		return trace.BadParameter("missing prefix")
	}
	orgs, err := svc.Search(ctx, entities.Organization.New(), fmt.Sprintf("name ~ %q", prefix))
	if err != nil {
		return trace.Wrap(err)
	}
	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].Str("name") < orgs[j].Str("name")
	})
	table := uitable.New()
	table.AddRow("ID", "ORGANIZATION", "RESULT")
	var errors []error
	for _, org := range orgs {
		name := org.Str("name")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		result := "skipped"
		if !dryRun {
			result = "deleted"
			if err := svc.Delete(ctx, org); err != nil {
				svc.WithError(err).Warnf("failed to delete organization %v", name)
				errors = append(errors, trace.Wrap(err, "deleting %v", name))
				result = "failed"
			}
		}
		table.AddRow(org.ID(), name, result)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		errors = append(errors, trace.ConvertSystemError(err))
	}
	return trace.NewAggregate(errors...)
}
