// Package lifecycle tracks which content view version each lifecycle
// environment is expected to hold.
//
// Suites record every publish, promote, remove and delete they perform and
// compare the ledger against what the server reports. Library is the root
// environment and always receives a newly published version
package lifecycle

import (
	"fmt"
	"strings"

	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	"github.com/hashicorp/go-version"
)

// versionPrefix precedes version numbers in the UI
const versionPrefix = "Version "

// FormatVersion returns the displayed name of version number v, "1.0" becomes "Version 1.0"
func FormatVersion(v string) string {
	return versionPrefix + v
}

// ParseVersion returns the number of a displayed version, "Version 1.0" becomes "1.0"
func ParseVersion(name string) (string, error) {
	if !strings.HasPrefix(name, versionPrefix) {
		return "", trace.BadParameter("%q is not a content view version", name)
	}
	number := strings.TrimPrefix(name, versionPrefix)
	if _, err := version.NewVersion(number); err != nil {
		return "", trace.BadParameter("%q has an invalid version number: %v", name, err)
	}
	return number, nil
}

type environment struct {
	name  string
	prior string
	// pinned is set while hosts or activation keys use the environment
	pinned bool
}

// Ledger is the expected state of one content view
type Ledger struct {
	// envs lists environments in the order they were added, which is also
	// path order since an environment is added after its prior
	envs     []*environment
	holders  map[string]string
	versions []string
	next     int
}

// NewLedger returns a ledger for a content view which has not been published
func NewLedger() *Ledger {
	return &Ledger{
		envs:    []*environment{{name: constants.Library}},
		holders: make(map[string]string),
		next:    1,
	}
}

// AddEnvironment adds an environment following prior
func (l *Ledger) AddEnvironment(name, prior string) error {
	if name == "" {
		return trace.BadParameter("missing environment name")
	}
	if l.env(name) != nil {
		return trace.AlreadyExists("environment %q already exists", name)
	}
	if l.env(prior) == nil {
		return trace.NotFound("prior environment %q not found", prior)
	}
	l.envs = append(l.envs, &environment{name: name, prior: prior})
	return nil
}

// Publish adds the next version and puts it in Library
func (l *Ledger) Publish() string {
	name := FormatVersion(fmt.Sprintf("%v.0", l.next))
	l.next++
	l.versions = append(l.versions, name)
	l.holders[constants.Library] = name
	return name
}

// Promote moves env to version. Unless forced the prior of env must already
// hold the version
func (l *Ledger) Promote(version, env string, force bool) error {
	if !l.hasVersion(version) {
		return trace.NotFound("version %q not found", version)
	}
	e := l.env(env)
	if e == nil {
		return trace.NotFound("environment %q not found", env)
	}
	if env == constants.Library {
		return trace.BadParameter("versions are published to %v, not promoted", constants.Library)
	}
	if !force && l.holders[e.prior] != version {
		return trace.CompareFailed("cannot promote %v to %v: %v does not hold it", version, env, e.prior)
	}
	l.holders[env] = version
	return nil
}

// Remove takes version out of the environments. Every environment must hold
// the version and none may be pinned. Nothing changes on error
func (l *Ledger) Remove(version string, envs ...string) error {
	if !l.hasVersion(version) {
		return trace.NotFound("version %q not found", version)
	}
	if len(envs) == 0 {
		return trace.BadParameter("missing environments to remove %v from", version)
	}
	for _, name := range envs {
		e := l.env(name)
		if e == nil {
			return trace.NotFound("environment %q not found", name)
		}
		if l.holders[name] != version {
			return trace.CompareFailed("%v is not in %v", version, name)
		}
		if e.pinned {
			return trace.CompareFailed("%v is in use in %v", version, name)
		}
	}
	for _, name := range envs {
		delete(l.holders, name)
	}
	return nil
}

// Delete removes version and clears the environments holding it.
// It is refused if one of those environments is pinned
func (l *Ledger) Delete(version string) error {
	if !l.hasVersion(version) {
		return trace.NotFound("version %q not found", version)
	}
	for _, e := range l.envs {
		if e.pinned && l.holders[e.name] == version {
			return trace.CompareFailed("%v is in use in %v", version, e.name)
		}
	}
	for env, holder := range l.holders {
		if holder == version {
			delete(l.holders, env)
		}
	}
	for i, v := range l.versions {
		if v == version {
			l.versions = append(l.versions[:i], l.versions[i+1:]...)
			break
		}
	}
	return nil
}

// Pin marks env as used by hosts or activation keys
func (l *Ledger) Pin(env string) error {
	return trace.Wrap(l.setPinned(env, true))
}

// Unpin clears the pin of env
func (l *Ledger) Unpin(env string) error {
	return trace.Wrap(l.setPinned(env, false))
}

func (l *Ledger) setPinned(env string, pinned bool) error {
	e := l.env(env)
	if e == nil {
		return trace.NotFound("environment %q not found", env)
	}
	e.pinned = pinned
	return nil
}

// Environments lists the environments holding version in path order
func (l *Ledger) Environments(version string) []string {
	var out []string
	for _, e := range l.envs {
		if l.holders[e.name] == version {
			out = append(out, e.name)
		}
	}
	return out
}

// Holder returns the version env holds
func (l *Ledger) Holder(env string) (string, bool) {
	version, ok := l.holders[env]
	return version, ok
}

// Versions lists the existing versions, oldest first
func (l *Ledger) Versions() []string {
	out := make([]string, len(l.versions))
	copy(out, l.versions)
	return out
}

func (l *Ledger) env(name string) *environment {
	for _, e := range l.envs {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (l *Ledger) hasVersion(version string) bool {
	for _, v := range l.versions {
		if v == version {
			return true
		}
	}
	return false
}
