// Package architecture drives the architecture pages
package architecture

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Architectures
	common = locators.Common
	tab    = locators.Tab
)

// Architectures is the architecture page object
type Architectures struct {
	*page.Base
	nav session.Navigator
}

// New returns the architecture page object of the session
func New(s *session.Session) Architectures {
	return Architectures{Base: s.Base, nav: s.Nav}
}

// Search returns the list entry of the architecture.
// Returns trace.NotFound if there is none
func (a Architectures) Search(name string) (*web.Selection, error) {
	if err := a.nav.GoToArchitectures(); err != nil {
		return nil, trace.Wrap(err)
	}
	return a.SearchEntity(name, loc.Get("arch.arch_name"), "")
}

// Update renames the architecture and associates the operating systems.
// An empty newName keeps the name
func (a Architectures) Update(oldName, newName string, newOS []string) error {
	sel, err := a.Search(oldName)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if newName != "" {
		if err := a.FieldUpdate(loc.Get("arch.name"), newName); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := a.ConfigureEntity(newOS, nil, constants.FilterOS, tab.Get("architecture.tab_os")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(a.Click(common.Get("submit")))
}
