// Package template drives the provisioning template pages
package template

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/session"
	"github.com/satelliteqe/robotest/lib/constants"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

var (
	loc    = locators.Templates
	common = locators.Common
	tab    = locators.Tab
)

// Template describes the fields of the provisioning template form
type Template struct {
	Name string
	// Path is the local file uploaded as template body
	Path string
	// CustomReally accepts the confirmation shown when the body is replaced
	CustomReally bool
	AuditComment string
	// Type is the visible template kind, like provision. Snippet is used if empty
	Type    string
	Snippet bool
	OSList  []string
}

// Update describes the changes made to a template
type Update struct {
	NewName      string
	Path         string
	CustomReally bool
	Type         string
	OSList       []string
	RemoveOSList []string
}

// Templates is the provisioning template page object
type Templates struct {
	*page.Base
	nav session.Navigator
}

// New returns the provisioning template page object of the session
func New(s *session.Session) Templates {
	return Templates{Base: s.Base, nav: s.Nav}
}

// Create adds a provisioning template. The template list must be open
func (t Templates) Create(tmpl Template) error {
	if tmpl.Path == "" {
		return trace.BadParameter("cannot create blank template %q", tmpl.Name)
	}
	if tmpl.Type == "" && !tmpl.Snippet {
		return trace.BadParameter("cannot create template %q without type", tmpl.Name)
	}
	if err := t.Click(loc.Get("provision.template_new")); err != nil {
		return trace.Wrap(err)
	}
	if err := t.FieldUpdate(loc.Get("provision.template_name"), tmpl.Name); err != nil {
		return trace.Wrap(err)
	}
	if err := t.Click(tab.Get("tab_primary")); err != nil {
		return trace.Wrap(err)
	}
	if err := t.upload(tmpl.Path, tmpl.CustomReally); err != nil {
		return trace.Wrap(err)
	}
	if tmpl.AuditComment != "" {
		if err := t.FieldUpdate(loc.Get("provision.audit_comment"), tmpl.AuditComment); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := t.Click(tab.Get("provision.tab_type")); err != nil {
		return trace.Wrap(err)
	}
	if tmpl.Type != "" {
		if err := t.SelectByText(loc.Get("provision.template_type"), tmpl.Type); err != nil {
			return trace.Wrap(err)
		}
	} else {
		if err := t.SetChecked(loc.Get("provision.template_snippet"), true); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := t.ScrollPage(); err != nil {
		return trace.Wrap(err)
	}
	if err := t.ConfigureEntity(tmpl.OSList, nil, constants.FilterTemplateOS, tab.Get("provision.tab_association")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(t.Click(common.Get("submit")))
}

// Search returns the list entry of the template.
// Returns trace.NotFound if there is none
func (t Templates) Search(name string) (*web.Selection, error) {
	if err := t.ScrollPage(); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := t.nav.GoToProvisioningTemplates(); err != nil {
		return nil, trace.Wrap(err)
	}
	return t.SearchEntity(name, loc.Get("provision.template_select"), "")
}

// Update changes the template found by name
func (t Templates) Update(name string, update Update) error {
	sel, err := t.Search(name)
	if err != nil {
		return trace.Wrap(err, "could not update the template %q", name)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if err := t.WaitForAjax(); err != nil {
		return trace.Wrap(err)
	}
	if update.NewName != "" {
		if err := t.FieldUpdate(loc.Get("provision.template_name"), update.NewName); err != nil {
			return trace.Wrap(err)
		}
	}
	if update.Path != "" {
		if err := t.upload(update.Path, update.CustomReally); err != nil {
			return trace.Wrap(err)
		}
	}
	if update.Type != "" {
		if err := t.Click(tab.Get("provision.tab_type")); err != nil {
			return trace.Wrap(err)
		}
		if err := t.SelectByText(loc.Get("provision.template_type"), update.Type); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := t.ConfigureEntity(update.OSList, update.RemoveOSList, constants.FilterTemplateOS, tab.Get("provision.tab_association")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(t.Click(common.Get("submit")))
}

// Delete deletes the template, or dismisses the confirmation unless really is set
func (t Templates) Delete(name string, really bool) error {
	if err := t.nav.GoToProvisioningTemplates(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(t.DeleteEntity(name, really,
		loc.Get("provision.template_select"),
		loc.Get("provision.template_delete"),
		loc.Get("provision.template_dropdown")))
}

func (t Templates) upload(path string, really bool) error {
	if err := t.TypeInto(loc.Get("provision.template_template"), path); err != nil {
		return trace.Wrap(err)
	}
	if err := t.HandleAlert(really); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(t.ScrollPage())
}
