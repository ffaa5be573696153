// Package domain drives the domain pages
package domain

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Domains
	common = locators.Common
)

// Domains is the domain page object
type Domains struct {
	*page.Base
	nav session.Navigator
}

// New returns the domain page object of the session
func New(s *session.Session) Domains {
	return Domains{Base: s.Base, nav: s.Nav}
}

// Create adds a domain. The domain list must be open
func (d Domains) Create(name, description string) error {
	if err := d.Click(loc.Get("domain.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := d.FieldUpdate(loc.Get("domain.name"), name); err != nil {
		return trace.Wrap(err)
	}
	if description != "" {
		if err := d.FieldUpdate(loc.Get("domain.description"), description); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(d.Click(common.Get("submit")))
}

// Search returns the list entry of the domain.
// Returns trace.NotFound if there is none
func (d Domains) Search(name string) (*web.Selection, error) {
	if err := d.nav.GoToDomains(); err != nil {
		return nil, trace.Wrap(err)
	}
	return d.SearchEntity(name, loc.Get("domain.domain_name"), "")
}

// Delete deletes the domain, or dismisses the confirmation unless really is set
func (d Domains) Delete(name string, really bool) error {
	if err := d.nav.GoToDomains(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(d.DeleteEntity(name, really,
		loc.Get("domain.domain_name"), loc.Get("domain.delete"), locators.Locator{}))
}
