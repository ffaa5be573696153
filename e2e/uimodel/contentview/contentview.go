// Package contentview drives the Katello content view pages: creation,
// repositories, filters and the version lifecycle
package contentview

import (
	"strings"

	"github.com/satelliteqe/robotest/e2e/uimodel/defaults"
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

// Filter content types as the filter form names them
const (
	ContentPackage      = "Package"
	ContentPackageGroup = "Package Group"
	ContentErratumByID  = "Erratum - by ID"
	ContentErratumDate  = "Erratum - Date and Type"
)

var (
	loc    = locators.ContentViews
	common = locators.Common
	tab    = locators.Tab
)

// ContentViews is the content view page object
type ContentViews struct {
	*page.Base
	nav session.Navigator
}

// New returns the content view page object of the session
func New(s *session.Session) ContentViews {
	return ContentViews{Base: s.Base, nav: s.Nav}
}

// Create fills in the new content view form. The content view list must be open
func (c ContentViews) Create(name, label, description string, composite bool) error {
	if err := c.Click(loc.Get("contentviews.new")); err != nil {
		return trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get("contentviews.name"), name); err != nil {
		return trace.Wrap(err)
	}
	if label != "" {
		if err := c.FieldUpdate(loc.Get("contentviews.label"), label); err != nil {
			return trace.Wrap(err)
		}
	}
	if description != "" {
		if err := c.FieldUpdate(common.Get("description"), description); err != nil {
			return trace.Wrap(err)
		}
	}
	if composite {
		if err := c.SetChecked(loc.Get("contentviews.composite"), true); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(c.Click(common.Get("create")))
}

// HasError returns true if the create form shows a validation error
func (c ContentViews) HasError() bool {
	_, err := c.WaitUntilElementFor(loc.Get("contentviews.has_error"), defaults.NotificationTimeout)
	return err == nil
}

// Search returns the list entry of the content view.
// Returns trace.NotFound if there is none
func (c ContentViews) Search(name string) (*web.Selection, error) {
	if err := c.nav.GoToContentViews(); err != nil {
		return nil, trace.Wrap(err)
	}
	return c.KatelloSearch(name, loc.Get("contentviews.select"))
}

// CanCreate returns true if the content view list offers to create one
func (c ContentViews) CanCreate() bool {
	return c.IsElementVisible(loc.Get("contentviews.new"))
}

// Open opens the details of the content view
func (c ContentViews) Open(name string) error {
	sel, err := c.Search(name)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.WaitForAjax())
}

// Update renames the content view and changes its description.
// Empty values are left unchanged
func (c ContentViews) Update(name, newName, newDescription string) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	if newName != "" {
		if err := c.editInPlace("contentviews.edit_name", "contentviews.edit_name_text", newName); err != nil {
			return trace.Wrap(err)
		}
	}
	if newDescription != "" {
		if err := c.editInPlace("contentviews.edit_description", "contentviews.edit_description_text", newDescription); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

func (c ContentViews) editInPlace(edit, text, value string) error {
	if err := c.Click(loc.Get(edit)); err != nil {
		return trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get(text), value); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.save_edit")))
}

// Delete removes the content view, or cancels the removal unless really is set
func (c ContentViews) Delete(name string, really bool) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.remove")); err != nil {
		return trace.Wrap(err)
	}
	if !really {
		return trace.Wrap(c.Click(common.Get("cancel")))
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.confirm_remove")))
}

// AddRemoveRepos adds the yum repositories to the content view, or removes
// them unless add is set
func (c ContentViews) AddRemoveRepos(name string, repos []string, add bool) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_content")); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_repositories")); err != nil {
		return trace.Wrap(err)
	}
	listTab, action := "contentviews.tab_repo_remove", "contentviews.remove_repo"
	if add {
		listTab, action = "contentviews.tab_repo_add", "contentviews.add_repo"
	}
	if err := c.Click(tab.Get(listTab)); err != nil {
		return trace.Wrap(err)
	}
	for _, repo := range repos {
		if err := c.FieldUpdate(common.Get("kt_table_search"), repo); err != nil {
			return trace.Wrap(err)
		}
		if err := c.Click(common.Get("kt_table_search_button")); err != nil {
			return trace.Wrap(err)
		}
		if err := c.SetChecked(loc.Get("contentviews.select_repo", repo), true); err != nil {
			return trace.Wrap(err, "repository %q is not listed", repo)
		}
	}
	return trace.Wrap(c.Click(loc.Get(action)))
}

// Publish publishes a new version and returns its name, like "Version 2.0"
func (c ContentViews) Publish(name, comment string) (string, error) {
	if err := c.Open(name); err != nil {
		return "", trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.publish")); err != nil {
		return "", trace.Wrap(err)
	}
	if comment != "" {
		if err := c.FieldUpdate(loc.Get("contentviews.publish_description"), comment); err != nil {
			return "", trace.Wrap(err)
		}
	}
	if err := c.Click(loc.Get("contentviews.publish_save")); err != nil {
		return "", trace.Wrap(err)
	}
	sel, err := c.WaitUntilElement(loc.Get("contentviews.version_name"))
	if err != nil {
		return "", trace.Wrap(err)
	}
	version, err := sel.Text()
	if err != nil {
		return "", trace.Wrap(err)
	}
	version = strings.TrimSpace(version)
	if err := c.CheckProgressBarStatus(version); err != nil {
		return "", trace.Wrap(err)
	}
	return version, nil
}

// CheckProgressBarStatus waits until the task running on version completes
func (c ContentViews) CheckProgressBarStatus(version string) error {
	err := c.WaitUntilElementGoneFor(loc.Get("contentviews.publish_progress", version), defaults.ProgressTimeout)
	return trace.Wrap(err, "task on %v has not finished", version)
}

// OpenVersions opens the versions tab of the content view
func (c ContentViews) OpenVersions(name string) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(tab.Get("contentviews.tab_versions")))
}

// Promote promotes version of the content view to env. A promotion out of
// the environment path is confirmed
func (c ContentViews) Promote(name, version, env string) error {
	if err := c.OpenVersions(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.promote_button", version)); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.select_env", env)); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.promote_version")); err != nil {
		return trace.Wrap(err)
	}
	if c.IsElementVisible(loc.Get("contentviews.force_promote")) {
		if err := c.Click(loc.Get("contentviews.force_promote")); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(c.CheckProgressBarStatus(version))
}

// VersionEnvironments lists the environments of version as displayed.
// The versions of the content view must be open
func (c ContentViews) VersionEnvironments(version string) ([]string, error) {
	if _, err := c.WaitUntilElement(loc.Get("contentviews.version_row", version)); err != nil {
		return nil, trace.Wrap(err)
	}
	envs, err := c.FindElements(loc.Get("contentviews.version_environments", version))
	if err != nil {
		return nil, trace.Wrap(err)
	}
	for i := range envs {
		envs[i] = strings.TrimSpace(envs[i])
	}
	return envs, nil
}

// RemoveVersionFromEnvironments removes version from the environments
// and leaves the version in the others
func (c ContentViews) RemoveVersionFromEnvironments(name, version string, envs []string) error {
	if len(envs) == 0 {
		return trace.BadParameter("missing environments to remove %v from", version)
	}
	if err := c.startRemoval(name, version); err != nil {
		return trace.Wrap(err)
	}
	if err := c.SetChecked(loc.Get("contentviews.remove_select_all_env"), false); err != nil {
		return trace.Wrap(err)
	}
	for _, env := range envs {
		if err := c.SetChecked(loc.Get("contentviews.remove_env_checkbox", env), true); err != nil {
			return trace.Wrap(err, "%v is not in %v", version, env)
		}
	}
	if err := c.confirmRemoval(); err != nil {
		return trace.Wrap(err)
	}
	if err := c.CheckProgressBarStatus(version); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.OpenVersions(name))
}

// DeleteVersion removes version from all its environments and deletes it
func (c ContentViews) DeleteVersion(name, version string) error {
	if err := c.startRemoval(name, version); err != nil {
		return trace.Wrap(err)
	}
	if c.IsElementVisible(loc.Get("contentviews.remove_select_all_env")) {
		if err := c.SetChecked(loc.Get("contentviews.remove_select_all_env"), true); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := c.SetChecked(loc.Get("contentviews.delete_version_checkbox"), true); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.confirmRemoval())
}

// ValidateVersionDeleted checks that version is no longer listed
func (c ContentViews) ValidateVersionDeleted(name, version string) error {
	if err := c.OpenVersions(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.WaitUntilElementGone(loc.Get("contentviews.version_row", version)); err != nil {
		return trace.CompareFailed("%v of %v was not deleted", version, name)
	}
	return nil
}

// ValidateVersionCannotBeDeleted starts the deletion of version and checks
// that it is refused, because activation keys use it
func (c ContentViews) ValidateVersionCannotBeDeleted(name, version string) error {
	if err := c.startRemoval(name, version); err != nil {
		return trace.Wrap(err)
	}
	if err := c.SetChecked(loc.Get("contentviews.remove_select_all_env"), true); err != nil {
		return trace.Wrap(err)
	}
	if err := c.SetChecked(loc.Get("contentviews.delete_version_checkbox"), true); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.remove_next")); err != nil {
		return trace.Wrap(err)
	}
	if _, err := c.WaitUntilElementFor(loc.Get("contentviews.version_cannot_delete"), defaults.NotificationTimeout); err != nil {
		return trace.CompareFailed("deletion of %v was not refused", version)
	}
	return trace.Wrap(c.Click(common.Get("cancel")))
}

func (c ContentViews) startRemoval(name, version string) error {
	if err := c.OpenVersions(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.version_dropdown", version)); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.version_remove", version)))
}

func (c ContentViews) confirmRemoval() error {
	if err := c.Click(loc.Get("contentviews.remove_next")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.confirm_remove_version")))
}
