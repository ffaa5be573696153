// Package user drives the user pages
package user

import (
	"strings"

	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Users
	common = locators.Common
	tab    = locators.Tab
)

// DefaultAuthSource is the authentication source of local users
const DefaultAuthSource = "INTERNAL"

// User describes the fields of the user form
type User struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	// PasswordConfirm defaults to Password
	PasswordConfirm string
	// Locale is the visible name of the language, like English
	Locale string
	// AuthorizedBy defaults to DefaultAuthSource
	AuthorizedBy string
	Admin        bool
	Roles        []string
	Orgs         []string
	Locs         []string
	DefaultOrg   string
	DefaultLoc   string
}

// Update describes the changes made to a user. Empty fields are left unchanged
type Update struct {
	NewUsername     string
	Email           string
	FirstName       string
	LastName        string
	Locale          string
	Password        string
	PasswordConfirm string
	Admin           *bool
	NewRoles        []string
	RemoveRoles     []string
	NewOrgs         []string
	NewLocs         []string
}

// Users is the user page object
type Users struct {
	*page.Base
	nav session.Navigator
}

// New returns the user page object of the session
func New(s *session.Session) Users {
	return Users{Base: s.Base, nav: s.Nav}
}

// Create fills in the new user form. The user list must be open
func (u Users) Create(user User) error {
	if err := u.Click(loc.Get("users.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := u.FieldUpdate(loc.Get("users.username"), user.Username); err != nil {
		return trace.Wrap(err)
	}
	if err := u.fillDetails(user.FirstName, user.LastName, user.Email, user.Locale); err != nil {
		return trace.Wrap(err)
	}
	authSource := user.AuthorizedBy
	if authSource == "" {
		authSource = DefaultAuthSource
	}
	if err := u.SelectByText(loc.Get("users.authorized_by"), authSource); err != nil {
		return trace.Wrap(err)
	}
	confirm := user.PasswordConfirm
	if confirm == "" {
		confirm = user.Password
	}
	if err := u.passwords(user.Password, confirm); err != nil {
		return trace.Wrap(err)
	}
	if user.Admin {
		if err := u.SetChecked(loc.Get("users.admin_role"), true); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := u.ConfigureEntity(user.Locs, nil, constants.FilterLocation, tab.Get("users.tab_locations")); err != nil {
		return trace.Wrap(err)
	}
	if err := u.ConfigureEntity(user.Orgs, nil, constants.FilterOrganization, tab.Get("users.tab_organizations")); err != nil {
		return trace.Wrap(err)
	}
	if err := u.defaults(user.DefaultOrg, user.DefaultLoc); err != nil {
		return trace.Wrap(err)
	}
	if err := u.ConfigureEntity(user.Roles, nil, constants.FilterUserRole, tab.Get("users.tab_roles")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(u.Click(common.Get("submit")))
}

// Search returns the list entry of the user. searchKey defaults to login.
// Returns trace.NotFound if there is none
func (u Users) Search(name, searchKey string) (*web.Selection, error) {
	if err := u.nav.GoToUsers(); err != nil {
		return nil, trace.Wrap(err)
	}
	if searchKey == "" {
		searchKey = "login"
	}
	return u.SearchEntity(name, loc.Get("users.user"), searchKey)
}

// Update changes the user found by name
func (u Users) Update(name, searchKey string, update Update) error {
	sel, err := u.Search(name, searchKey)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if update.NewUsername != "" {
		if err := u.FieldUpdate(loc.Get("users.username"), update.NewUsername); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := u.fillDetails(update.FirstName, update.LastName, update.Email, update.Locale); err != nil {
		return trace.Wrap(err)
	}
	if update.Password != "" {
		confirm := update.PasswordConfirm
		if confirm == "" {
			confirm = update.Password
		}
		if err := u.passwords(update.Password, confirm); err != nil {
			return trace.Wrap(err)
		}
	}
	if update.Admin != nil {
		if err := u.SetChecked(loc.Get("users.admin_role"), *update.Admin); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := u.ConfigureEntity(update.NewLocs, nil, constants.FilterLocation, tab.Get("users.tab_locations")); err != nil {
		return trace.Wrap(err)
	}
	if err := u.ConfigureEntity(update.NewOrgs, nil, constants.FilterOrganization, tab.Get("users.tab_organizations")); err != nil {
		return trace.Wrap(err)
	}
	if err := u.ConfigureEntity(update.NewRoles, update.RemoveRoles, constants.FilterUserRole, tab.Get("users.tab_roles")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(u.Click(common.Get("submit")))
}

// Delete deletes the user, or dismisses the confirmation unless really is set
func (u Users) Delete(name, searchKey string, really bool) error {
	if _, err := u.Search(name, searchKey); err != nil {
		return trace.Wrap(err)
	}
	if err := u.Click(loc.Get("users.dropdown", name)); err != nil {
		return trace.Wrap(err)
	}
	sel, err := u.WaitUntilElement(loc.Get("users.delete", name))
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if err := u.HandleAlert(really); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(u.WaitForAjax())
}

// FieldValue returns the current value of a field of the open user form,
// like users.firstname
func (u Users) FieldValue(field string) (string, error) {
	sel, err := u.WaitUntilElement(loc.Get(field))
	if err != nil {
		return "", trace.Wrap(err)
	}
	value, err := sel.Attribute("value")
	return value, trace.Wrap(err)
}

// Language returns the visible name of the language selected in the open user form
func (u Users) Language() (string, error) {
	sel, err := u.WaitUntilElement(loc.Get("users.selected_lang"))
	if err != nil {
		return "", trace.Wrap(err)
	}
	text, err := sel.Text()
	return strings.TrimSpace(text), trace.Wrap(err)
}

// Assigned opens the user and reports which of names are selected on the
// tab, like users.tab_roles
func (u Users) Assigned(name, tabKey string, names ...string) (map[string]bool, error) {
	sel, err := u.Search(name, "")
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := u.Click(tab.Get(tabKey)); err != nil {
		return nil, trace.Wrap(err)
	}
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = u.IsElementVisible(common.Get("entity_deselect", n))
	}
	return out, nil
}

func (u Users) fillDetails(first, last, email, locale string) error {
	fields := []struct{ name, value string }{
		{"users.firstname", first},
		{"users.lastname", last},
		{"users.email", email},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := u.FieldUpdate(loc.Get(f.name), f.value); err != nil {
			return trace.Wrap(err)
		}
	}
	if locale != "" {
		return trace.Wrap(u.SelectByText(loc.Get("users.language"), locale))
	}
	return nil
}

func (u Users) passwords(password, confirm string) error {
	if err := u.FieldUpdate(loc.Get("users.password"), password); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(u.FieldUpdate(loc.Get("users.password_confirm"), confirm))
}

func (u Users) defaults(org, location string) error {
	if org != "" {
		if err := u.SelectByText(loc.Get("users.default_org"), org); err != nil {
			return trace.Wrap(err)
		}
	}
	if location != "" {
		if err := u.Click(tab.Get("users.tab_locations")); err != nil {
			return trace.Wrap(err)
		}
		return trace.Wrap(u.SelectByText(loc.Get("users.default_loc"), location))
	}
	return nil
}
