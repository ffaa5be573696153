package framework

import (
	"fmt"
	"os"

	"github.com/gravitational/trace"
	"github.com/hashicorp/go-version"
	. "github.com/onsi/ginkgo"
	log "github.com/sirupsen/logrus"
)

// RoboDescribe is local wrapper function for ginkgo.Describe.
// It adds test namespacing.
func RoboDescribe(text string, body func()) bool {
	return Describe("[robotest] "+text, body)
}

// Tier1 declares a spec of the first tier. Tiers can be selected with -ginkgo.focus='\[tier1\]'
func Tier1(text string, body interface{}) bool {
	return tier(1, text, body)
}

// Tier2 declares a spec of the second tier
func Tier2(text string, body interface{}) bool {
	return tier(2, text, body)
}

// Tier3 declares a spec of the third tier
func Tier3(text string, body interface{}) bool {
	return tier(3, text, body)
}

// Tier4 declares a spec of the fourth tier, usually long running
func Tier4(text string, body interface{}) bool {
	return tier(4, text, body)
}

func tier(n int, text string, body interface{}) bool {
	return It(fmt.Sprintf("[tier%v] %v", n, text), body)
}

// Stubbed declares a spec which has not been automated yet
func Stubbed(text string, _ ...interface{}) bool {
	return PIt("[stubbed] " + text)
}

// Failf fails the current spec with a formatted message
func Failf(format string, args ...interface{}) {
	Fail(fmt.Sprintf(format, args...), 1)
}

// SkipIfBugOpen skips the current spec while the bug is open in the tracker
func SkipIfBugOpen(tracker string, id int) {
	switch tracker {
	case "bugzilla":
		if TestContext.Settings.Bugzilla.IsOpen(id) {
			Skip(fmt.Sprintf("bugzilla bug %v is open", id), 1)
		}
	default:
		Failf("unknown bug tracker %q", tracker)
	}
}

// RunOnlyOn skips the current spec unless the server is the given product.
// Only "sat" is known: it skips on upstream Foreman/Katello
func RunOnlyOn(product string) {
	switch product {
	case "sat":
		if TestContext.Settings.Server.Upstream {
			Skip("runs only on Satellite", 1)
		}
	default:
		Failf("unknown product %q", product)
	}
}

// SkipIfNotSet skips the current spec if the settings section is not configured
func SkipIfNotSet(section string) {
	switch section {
	case "clients":
		if TestContext.Settings.Clients == nil {
			Skip("clients are not configured", 1)
		}
	default:
		Failf("unknown settings section %q", section)
	}
}

// SkipIfVersionBelow skips the current spec on servers older than minVersion
func SkipIfVersionBelow(minVersion string) {
	min, err := version.NewVersion(minVersion)
	if err != nil {
		Failf("invalid version %q: %v", minVersion, err)
		return
	}
	if TestContext.ServerVersion != nil && TestContext.ServerVersion.LessThan(min) {
		Skip(fmt.Sprintf("server version %v is below %v", TestContext.ServerVersion, min), 1)
	}
}

// InitLogger configures the standard logger for a suite
func InitLogger(level log.Level) {
	log.StandardLogger().Hooks = make(log.LevelHooks)
	log.SetFormatter(&trace.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
}
