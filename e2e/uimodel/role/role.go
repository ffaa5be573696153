// Package role drives the role and role filter pages
package role

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Roles
	common = locators.Common
	tab    = locators.Tab
)

// Roles is the role page object
type Roles struct {
	*page.Base
	nav session.Navigator
}

// New returns the role page object of the session
func New(s *session.Session) Roles {
	return Roles{Base: s.Base, nav: s.Nav}
}

// Create adds a role limited to the organizations and locations.
// The role list must be open
func (r Roles) Create(name string, orgs, locs []string) error {
	if err := r.Click(loc.Get("roles.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := r.FieldUpdate(loc.Get("roles.name"), name); err != nil {
		return trace.Wrap(err)
	}
	if err := r.taxonomies(orgs, locs, nil, nil); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(r.Click(common.Get("submit")))
}

// Search returns the list entry of the role.
// Returns trace.NotFound if there is none
func (r Roles) Search(name string) (*web.Selection, error) {
	if err := r.nav.GoToRoles(); err != nil {
		return nil, trace.Wrap(err)
	}
	return r.SearchEntity(name, loc.Get("roles.role"), "")
}

// Update renames the role and changes its taxonomies.
// An empty newName keeps the name
func (r Roles) Update(name, newName string, addOrgs, addLocs, removeOrgs, removeLocs []string) error {
	sel, err := r.Search(name)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if newName != "" {
		if err := r.FieldUpdate(loc.Get("roles.name"), newName); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := r.taxonomies(addOrgs, addLocs, removeOrgs, removeLocs); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(r.Click(common.Get("submit")))
}

// Delete deletes the role, or dismisses the confirmation unless really is set
func (r Roles) Delete(name string, really bool) error {
	if err := r.nav.GoToRoles(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(r.DeleteEntity(name, really,
		loc.Get("roles.role"), loc.Get("roles.delete"), loc.Get("roles.dropdown")))
}

func (r Roles) taxonomies(addOrgs, addLocs, removeOrgs, removeLocs []string) error {
	if err := r.ConfigureEntity(addLocs, removeLocs, constants.FilterLocation, tab.Get("roles.tab_loc")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(r.ConfigureEntity(addOrgs, removeOrgs, constants.FilterOrganization, tab.Get("roles.tab_org")))
}
