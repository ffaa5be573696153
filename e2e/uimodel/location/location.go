// Package location drives the location pages
package location

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Locations
	common = locators.Common
)

// Locations is the location page object
type Locations struct {
	*page.Base
	nav session.Navigator
}

// New returns the location page object of the session
func New(s *session.Session) Locations {
	return Locations{Base: s.Base, nav: s.Nav}
}

// Create adds a location nested under parent, if given.
// The location list must be open
func (l Locations) Create(name, parent string) error {
	if err := l.Click(loc.Get("location.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := l.FieldUpdate(loc.Get("location.name"), name); err != nil {
		return trace.Wrap(err)
	}
	if parent != "" {
		if err := l.SelectByText(loc.Get("location.parent"), parent); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := l.Click(common.Get("submit")); err != nil {
		return trace.Wrap(err)
	}
	if l.IsElementVisible(loc.Get("location.proceed")) {
		if err := l.Click(loc.Get("location.proceed")); err != nil {
			return trace.Wrap(err)
		}
		return trace.Wrap(l.Click(common.Get("submit")))
	}
	return nil
}

// Search returns the list entry of the location.
// Returns trace.NotFound if there is none
func (l Locations) Search(name string) (*web.Selection, error) {
	if err := l.nav.GoToLocations(); err != nil {
		return nil, trace.Wrap(err)
	}
	return l.SearchEntity(name, loc.Get("location.select_name"), "")
}
