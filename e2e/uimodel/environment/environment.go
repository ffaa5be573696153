// Package environment drives the lifecycle environment pages
package environment

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Environments
	common = locators.Common
)

// Environments is the lifecycle environment page object
type Environments struct {
	*page.Base
	nav session.Navigator
}

// New returns the lifecycle environment page object of the session
func New(s *session.Session) Environments {
	return Environments{Base: s.Base, nav: s.Nav}
}

// Create adds an environment after prior. An empty prior means Library.
// The environment paths page must be open
func (e Environments) Create(name, label, description, prior string) error {
	newLink := loc.Get("content_env.new")
	if prior != "" && prior != constants.Library {
		newLink = loc.Get("content_env.new_prior", prior)
	}
	if err := e.Click(newLink); err != nil {
		return trace.Wrap(err)
	}
	if err := e.FieldUpdate(common.Get("name"), name); err != nil {
		return trace.Wrap(err)
	}
	if label != "" {
		if err := e.FieldUpdate(common.Get("label"), label); err != nil {
			return trace.Wrap(err)
		}
	}
	if description != "" {
		if err := e.FieldUpdate(common.Get("description"), description); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(e.Click(common.Get("create")))
}

// Search returns the link of the environment in the paths page.
// Returns trace.NotFound if there is none
func (e Environments) Search(name string) (*web.Selection, error) {
	if err := e.nav.GoToLifecycleEnvironments(); err != nil {
		return nil, trace.Wrap(err)
	}
	return e.WaitUntilElement(loc.Get("content_env.select_name", name))
}
