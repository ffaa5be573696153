// Package factory creates entities through the UI. Every helper opens the
// page of the entity in the given organization before filling the form
package factory

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/contentview"
	"github.com/satelliteqe/robotest/e2e/uimodel/domain"
	"github.com/satelliteqe/robotest/e2e/uimodel/environment"
	"github.com/satelliteqe/robotest/e2e/uimodel/location"
	"github.com/satelliteqe/robotest/e2e/uimodel/organization"
	"github.com/satelliteqe/robotest/e2e/uimodel/role"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/e2e/uimodel/template"
	"github.com/satelliteqe/robotest/e2e/uimodel/user"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
)

// MakeContentView creates a content view in org
func MakeContentView(s *session.Session, org, name, description string) error {
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if err := s.Nav.GoToContentViews(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(contentview.New(s).Create(name, "", description, false))
}

// MakeCompositeContentView creates a composite content view in org
func MakeCompositeContentView(s *session.Session, org, name string) error {
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if err := s.Nav.GoToContentViews(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(contentview.New(s).Create(name, "", "", true))
}

// MakeLifecycleEnvironment creates an environment following prior in org.
// An empty prior means Library
func MakeLifecycleEnvironment(s *session.Session, org, name, prior string) error {
	if prior == "" {
		prior = constants.Library
	}
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if err := s.Nav.GoToLifecycleEnvironments(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(environment.New(s).Create(name, "", "", prior))
}

// MakeRole creates a role limited to the organizations and locations
func MakeRole(s *session.Session, name string, orgs, locs []string) error {
	if err := s.Nav.GoToRoles(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(role.New(s).Create(name, orgs, locs))
}

// MakeUser creates a user
func MakeUser(s *session.Session, u user.User) error {
	if err := s.Nav.GoToUsers(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(user.New(s).Create(u))
}

// MakeDomain creates a domain in org
func MakeDomain(s *session.Session, org, name, description string) error {
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if err := s.Nav.GoToDomains(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(domain.New(s).Create(name, description))
}

// MakeOrg creates an organization
func MakeOrg(s *session.Session, name string) error {
	if err := s.Nav.GoToOrganizations(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(organization.New(s).Create(name, "", ""))
}

// MakeLocation creates a location nested under parent, if given
func MakeLocation(s *session.Session, name, parent string) error {
	if err := s.Nav.GoToLocations(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(location.New(s).Create(name, parent))
}

// MakeTemplate creates a provisioning template in org
func MakeTemplate(s *session.Session, org string, tmpl template.Template) error {
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if err := s.Nav.GoToProvisioningTemplates(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(template.New(s).Create(tmpl))
}

// SetContext selects the current organization and location. Empty values
// keep the current selection
func SetContext(s *session.Session, org, loc string) error {
	if err := inOrg(s, org); err != nil {
		return trace.Wrap(err)
	}
	if loc == "" {
		return nil
	}
	return trace.Wrap(s.Nav.GoToSelectLoc(loc))
}

func inOrg(s *session.Session, org string) error {
	if org == "" {
		return nil
	}
	return trace.Wrap(s.Nav.GoToSelectOrg(org))
}
