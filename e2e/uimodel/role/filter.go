package role

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"

	"github.com/gravitational/trace"
)

// Permission describes a filter added to a role
type Permission struct {
	// ResourceType is the resource the filter applies to, like Domain
	ResourceType string
	// Names lists the permissions granted, like view_domains
	Names []string
	// Search limits the filter to matching resources
	Search string
	// Override detaches the filter from the taxonomies of the role and
	// limits it to Orgs and Locs
	Override bool
	// CheckOverride requires the override checkbox to be offered exactly
	// when Overridable is set
	CheckOverride bool
	Overridable   bool
	Orgs          []string
	Locs          []string
}

// AddPermission adds a filter to the role
func (r Roles) AddPermission(name string, p Permission) error {
	if p.ResourceType == "" {
		return trace.BadParameter("missing resource type")
	}
	if _, err := r.Search(name); err != nil {
		return trace.Wrap(err)
	}
	if err := r.Click(loc.Get("roles.dropdown", name)); err != nil {
		return trace.Wrap(err)
	}
	if err := r.Click(loc.Get("roles.add_permission", name)); err != nil {
		return trace.Wrap(err)
	}
	if err := r.SelectByText(loc.Get("filter.resource_type"), p.ResourceType); err != nil {
		return trace.Wrap(err)
	}
	if err := r.ConfigureEntity(p.Names, nil, "filter_permission", locators.Locator{}); err != nil {
		return trace.Wrap(err)
	}
	if p.Search != "" {
		if err := r.SetChecked(loc.Get("filter.unlimited"), false); err != nil {
			return trace.Wrap(err)
		}
		if err := r.FieldUpdate(loc.Get("filter.search"), p.Search); err != nil {
			return trace.Wrap(err)
		}
	}
	overridable := r.IsElementVisible(loc.Get("filter.override_taxonomies"))
	if p.CheckOverride && p.Overridable != overridable {
		return trace.CompareFailed("filters on %v: expected overridable %v, got %v",
			p.ResourceType, p.Overridable, overridable)
	}
	if p.Override {
		if !overridable {
			return trace.CompareFailed("filters on %v cannot override taxonomies", p.ResourceType)
		}
		if err := r.SetChecked(loc.Get("filter.override_taxonomies"), true); err != nil {
			return trace.Wrap(err)
		}
		if err := r.taxonomies(p.Orgs, p.Locs, nil, nil); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(r.Click(common.Get("submit")))
}
