// Package organization drives the organization pages
package organization

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Orgs
	common = locators.Common
)

// Orgs is the organization page object
type Orgs struct {
	*page.Base
	nav session.Navigator
}

// New returns the organization page object of the session
func New(s *session.Session) Orgs {
	return Orgs{Base: s.Base, nav: s.Nav}
}

// Create adds an organization. The organization list must be open
func (o Orgs) Create(name, label, description string) error {
	if err := o.Click(loc.Get("org.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := o.FieldUpdate(loc.Get("org.name"), name); err != nil {
		return trace.Wrap(err)
	}
	if label != "" {
		if err := o.FieldUpdate(loc.Get("org.label"), label); err != nil {
			return trace.Wrap(err)
		}
	}
	if description != "" {
		if err := o.FieldUpdate(loc.Get("org.description"), description); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := o.Click(common.Get("submit")); err != nil {
		return trace.Wrap(err)
	}
	// hosts without an organization are offered for assignment first
	if o.IsElementVisible(loc.Get("org.proceed")) {
		if err := o.Click(loc.Get("org.proceed")); err != nil {
			return trace.Wrap(err)
		}
		return trace.Wrap(o.Click(common.Get("submit")))
	}
	return nil
}

// Search returns the list entry of the organization.
// Returns trace.NotFound if there is none
func (o Orgs) Search(name string) (*web.Selection, error) {
	if err := o.nav.GoToOrganizations(); err != nil {
		return nil, trace.Wrap(err)
	}
	return o.SearchEntity(name, loc.Get("org.org_name"), "")
}
