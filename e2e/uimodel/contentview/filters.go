package contentview

import (
	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
)

// Version types of package rules as the rule form names them
const (
	AllVersions = "All Versions"
	EqualTo     = "Equal To"
	GreaterThan = "Greater Than"
	LessThan    = "Less Than"
	Range       = "Range"
)

// PackageRule matches packages by name and version in a package filter
type PackageRule struct {
	Name string
	// VersionType is one of the version type constants. AllVersions is used if empty
	VersionType string
	// Version is the compared version, or the lower bound of a Range
	Version string
	// MaxVersion is the upper bound of a Range
	MaxVersion string
}

// AddFilter creates a filter on the content view. contentType is one of the
// Content* constants and inclusion is Include or Exclude
func (c ContentViews) AddFilter(name, filter, contentType, inclusion string) error {
	if err := c.openFilters(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.new_filter")); err != nil {
		return trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get("contentviews.filter_name"), filter); err != nil {
		return trace.Wrap(err)
	}
	if err := c.SelectByText(loc.Get("contentviews.content_type"), contentType); err != nil {
		return trace.Wrap(err)
	}
	if err := c.SelectByText(loc.Get("contentviews.type"), inclusion); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(common.Get("create")))
}

// RemoveFilter removes the filters from the content view
func (c ContentViews) RemoveFilter(name string, filters []string) error {
	if err := c.openFilters(name); err != nil {
		return trace.Wrap(err)
	}
	for _, filter := range filters {
		if err := c.SetChecked(loc.Get("contentviews.filter_checkbox", filter), true); err != nil {
			return trace.Wrap(err, "filter %q is not listed", filter)
		}
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.remove_filter")))
}

// SearchFilter returns the list entry of the filter.
// Returns trace.NotFound if there is none
func (c ContentViews) SearchFilter(name, filter string) (*web.Selection, error) {
	if err := c.openFilters(name); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get("contentviews.search_filters"), filter); err != nil {
		return nil, trace.Wrap(err)
	}
	return c.WaitUntilElement(loc.Get("contentviews.search_filter_row", filter))
}

// AddPackagesToFilter adds a rule per package to the package filter
func (c ContentViews) AddPackagesToFilter(name, filter string, rules []PackageRule) error {
	if len(rules) == 0 {
		return trace.BadParameter("missing package rules for filter %q", filter)
	}
	sel, err := c.SearchFilter(name, filter)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	for _, rule := range rules {
		if err := c.addRule(rule); err != nil {
			return trace.Wrap(err, "adding rule for %q to filter %q", rule.Name, filter)
		}
	}
	return nil
}

func (c ContentViews) addRule(rule PackageRule) error {
	if err := c.Click(loc.Get("contentviews.add_rule")); err != nil {
		return trace.Wrap(err)
	}
	if err := c.FieldUpdate(loc.Get("contentviews.rule_name"), rule.Name); err != nil {
		return trace.Wrap(err)
	}
	versionType := rule.VersionType
	if versionType == "" {
		versionType = AllVersions
	}
	if err := c.SelectByText(loc.Get("contentviews.rule_version"), versionType); err != nil {
		return trace.Wrap(err)
	}
	switch versionType {
	case AllVersions:
	case Range:
		if rule.Version == "" || rule.MaxVersion == "" {
			return trace.BadParameter("range rule for %q needs both bounds", rule.Name)
		}
		if err := c.FieldUpdate(loc.Get("contentviews.rule_min_version"), rule.Version); err != nil {
			return trace.Wrap(err)
		}
		if err := c.FieldUpdate(loc.Get("contentviews.rule_max_version"), rule.MaxVersion); err != nil {
			return trace.Wrap(err)
		}
	default:
		if rule.Version == "" {
			return trace.BadParameter("%v rule for %q needs a version", versionType, rule.Name)
		}
		if err := c.FieldUpdate(loc.Get("contentviews.rule_min_version"), rule.Version); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(c.Click(loc.Get("contentviews.save_rule")))
}

// PackageSearch returns the row of the package in version of the content view.
// Returns trace.NotFound if the version does not hold the package
func (c ContentViews) PackageSearch(name, version, pkg string) (*web.Selection, error) {
	if err := c.OpenVersions(name); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.version_link", version)); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(loc.Get("contentviews.version_packages")); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.FieldUpdate(common.Get("kt_table_search"), pkg); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.Click(common.Get("kt_table_search_button")); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := c.WaitForAjax(); err != nil {
		return nil, trace.Wrap(err)
	}
	sel, err := c.FindElement(loc.Get("contentviews.package_row", pkg))
	if err != nil || !c.IsElementVisible(loc.Get("contentviews.package_row", pkg)) {
		return nil, trace.NotFound("package %v is not in %v of %v", pkg, version, name)
	}
	return sel, nil
}

func (c ContentViews) openFilters(name string) error {
	if err := c.Open(name); err != nil {
		return trace.Wrap(err)
	}
	if err := c.Click(tab.Get("contentviews.tab_content")); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(c.Click(tab.Get("contentviews.tab_filters")))
}
