package session

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"

	"github.com/gravitational/trace"
)

var menu = locators.Menu

// Navigator opens pages through the application menu
type Navigator struct {
	*page.Base
}

func (n Navigator) open(top, item string) error {
	if err := n.Click(menu.Get(top)); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(n.Click(menu.Get(item)))
}

// GoToContentViews opens Content > Content Views
func (n Navigator) GoToContentViews() error {
	return n.open("menu.content", "menu.content_views")
}

// GoToLifecycleEnvironments opens Content > Lifecycle Environments
func (n Navigator) GoToLifecycleEnvironments() error {
	return n.open("menu.content", "menu.lifecycle_environments")
}

// GoToProducts opens Content > Products
func (n Navigator) GoToProducts() error {
	return n.open("menu.content", "menu.products")
}

// GoToSyncPlans opens Content > Sync Plans
func (n Navigator) GoToSyncPlans() error {
	return n.open("menu.content", "menu.sync_plans")
}

// GoToProvisioningTemplates opens Hosts > Provisioning Templates
func (n Navigator) GoToProvisioningTemplates() error {
	return n.open("menu.hosts", "menu.provisioning_templates")
}

// GoToArchitectures opens Hosts > Architectures
func (n Navigator) GoToArchitectures() error {
	return n.open("menu.hosts", "menu.architectures")
}

// GoToDomains opens Infrastructure > Domains
func (n Navigator) GoToDomains() error {
	return n.open("menu.infrastructure", "menu.domains")
}

// GoToOrganizations opens Administer > Organizations
func (n Navigator) GoToOrganizations() error {
	return n.open("menu.administer", "menu.organizations")
}

// GoToLocations opens Administer > Locations
func (n Navigator) GoToLocations() error {
	return n.open("menu.administer", "menu.locations")
}

// GoToUsers opens Administer > Users
func (n Navigator) GoToUsers() error {
	return n.open("menu.administer", "menu.users")
}

// GoToRoles opens Administer > Roles
func (n Navigator) GoToRoles() error {
	return n.open("menu.administer", "menu.roles")
}

// GoToSelectOrg makes org the current organization
func (n Navigator) GoToSelectOrg(org string) error {
	return trace.Wrap(n.selectContext("org.any_context", "org.select_org", org))
}

// GoToSelectLoc makes loc the current location
func (n Navigator) GoToSelectLoc(loc string) error {
	return trace.Wrap(n.selectContext("loc.any_context", "loc.select_loc", loc))
}

func (n Navigator) selectContext(switcher, entry, name string) error {
	if err := n.Click(menu.Get(switcher)); err != nil {
		return trace.Wrap(err)
	}
	if err := n.Click(menu.Get(entry, name)); err != nil {
		return trace.Wrap(err, "failed to select context %q", name)
	}
	return nil
}
