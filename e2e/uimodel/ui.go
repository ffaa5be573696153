package uimodel

import (
	"time"

	"github.com/satelliteqe/robotest/e2e/uimodel/architecture"
	"github.com/satelliteqe/robotest/e2e/uimodel/contentview"
	"github.com/satelliteqe/robotest/e2e/uimodel/domain"
	"github.com/satelliteqe/robotest/e2e/uimodel/environment"
	"github.com/satelliteqe/robotest/e2e/uimodel/location"
	"github.com/satelliteqe/robotest/e2e/uimodel/organization"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/role"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/e2e/uimodel/template"
	"github.com/satelliteqe/robotest/e2e/uimodel/user"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

// UI is a facade for accessing high level ui model objects
type UI struct {
	// Session is the logged in session
	Session *session.Session
}

// Login signs in as username at URL and returns the facade for the session
func Login(p *web.Page, timeout time.Duration, URL, username, password string) (*UI, error) {
	s, err := session.Login(page.New(p, timeout), URL, username, password)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &UI{Session: s}, nil
}

// Logout ends the session
func (u *UI) Logout() error {
	return trace.Wrap(u.Session.Close())
}

// GoToContentViews opens the content view list and returns the content view object
func (u *UI) GoToContentViews() (contentview.ContentViews, error) {
	return contentview.New(u.Session), trace.Wrap(u.Session.Nav.GoToContentViews())
}

// GoToLifecycleEnvironments opens the environment paths and returns the environment object
func (u *UI) GoToLifecycleEnvironments() (environment.Environments, error) {
	return environment.New(u.Session), trace.Wrap(u.Session.Nav.GoToLifecycleEnvironments())
}

// GoToRoles opens the role list and returns the role object
func (u *UI) GoToRoles() (role.Roles, error) {
	return role.New(u.Session), trace.Wrap(u.Session.Nav.GoToRoles())
}

// GoToUsers opens the user list and returns the user object
func (u *UI) GoToUsers() (user.Users, error) {
	return user.New(u.Session), trace.Wrap(u.Session.Nav.GoToUsers())
}

// GoToOrganizations opens the organization list and returns the organization object
func (u *UI) GoToOrganizations() (organization.Orgs, error) {
	return organization.New(u.Session), trace.Wrap(u.Session.Nav.GoToOrganizations())
}

// GoToLocations opens the location list and returns the location object
func (u *UI) GoToLocations() (location.Locations, error) {
	return location.New(u.Session), trace.Wrap(u.Session.Nav.GoToLocations())
}

// GoToDomains opens the domain list and returns the domain object
func (u *UI) GoToDomains() (domain.Domains, error) {
	return domain.New(u.Session), trace.Wrap(u.Session.Nav.GoToDomains())
}

// GoToTemplates opens the provisioning template list and returns the template object
func (u *UI) GoToTemplates() (template.Templates, error) {
	return template.New(u.Session), trace.Wrap(u.Session.Nav.GoToProvisioningTemplates())
}

// GoToArchitectures opens the architecture list and returns the architecture object
func (u *UI) GoToArchitectures() (architecture.Architectures, error) {
	return architecture.New(u.Session), trace.Wrap(u.Session.Nav.GoToArchitectures())
}
