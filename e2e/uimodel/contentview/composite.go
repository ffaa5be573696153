package contentview

import (
	"strings"

	"github.com/satelliteqe/robotest/e2e/uimodel/locators"

	"github.com/gravitational/trace"
)

// AddRemoveComponents adds the published content views to the composite
// content view, or removes them unless add is set. Returns trace.BadParameter
// if the view is not composite and trace.NotFound if a component is not
// available, like an unpublished view
func (c ContentViews) AddRemoveComponents(composite string, views []string, add bool) error {
	if err := c.Open(composite); err != nil {
		return trace.Wrap(err)
	}
	if !c.IsElementVisible(tab.Get("contentviews.tab_components")) {
		return trace.BadParameter("content view %q is not composite", composite)
	}
	if err := c.Click(tab.Get("contentviews.tab_components")); err != nil {
		return trace.Wrap(err)
	}
	listTab, action := "contentviews.tab_cv_remove", "contentviews.remove_cv"
	if add {
		listTab, action = "contentviews.tab_cv_add", "contentviews.add_cv"
	}
	if err := c.Click(loc.Get(listTab)); err != nil {
		return trace.Wrap(err)
	}
	for _, view := range views {
		if err := c.FieldUpdate(common.Get("kt_table_search"), view); err != nil {
			return trace.Wrap(err)
		}
		if err := c.Click(common.Get("kt_table_search_button")); err != nil {
			return trace.Wrap(err)
		}
		if _, err := c.WaitUntilElement(loc.Get("contentviews.select_cv", view)); err != nil {
			return trace.NotFound("content view %q is not available to %q", view, composite)
		}
		if err := c.SetChecked(loc.Get("contentviews.select_cv", view), true); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(c.Click(loc.Get(action)))
}

// Components lists the content views of the composite content view
func (c ContentViews) Components(composite string) ([]string, error) {
	if err := c.Open(composite); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_components")); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.tab_cv_remove")); err != nil {
		return nil, trace.Wrap(err)
	}
	return c.texts(loc.Get("contentviews.components"))
}

// Copy creates newName as a copy of the content view
func (c ContentViews) Copy(name, newName string) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.copy")); err != nil {
		return trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get("contentviews.copy_name"), newName); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.copy_create")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.WaitForAjax())
}

// YumRepositories lists the yum repositories of the content view
func (c ContentViews) YumRepositories(name string) ([]string, error) {
	if err := c.Open(name); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_content")); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_repositories")); err != nil {
		return nil, trace.Wrap(err)
	}
	return c.texts(loc.Get("contentviews.yum_repositories"))
}

func (c ContentViews) texts(l locators.Locator) ([]string, error) {
	if err := c.WaitForAjax(); err != nil {
		return nil, trace.Wrap(err)
	}
	if !c.IsElementVisible(l) {
		return nil, nil
	}
	names, err := c.FindElements(l)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names, nil
}
