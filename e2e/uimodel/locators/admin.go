package locators

// Roles lists the locators of the role and filter pages
var Roles = Table{
	"roles.new":            xpath("//a[@href='/roles/new']"),
	"roles.name":           id("role_name"),
	"roles.role":           xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
	"roles.dropdown":       xpath("//td/a[normalize-space(.)='%s']/following::td//a[@data-toggle='dropdown']"),
	"roles.delete":         xpath("//td/a[normalize-space(.)='%s']/following::td//a[@data-method='delete']"),
	"roles.add_permission": xpath("//td/a[normalize-space(.)='%s']/following::td//a[contains(@href,'/filters/new')]"),
	"roles.permissions":    xpath("//td/a[normalize-space(.)='%s']/following::td//a[contains(@href,'/filters')]"),

	"filter.resource_type":       id("filter_resource_type"),
	"filter.permission":          xpath("//div[@id='ms-filter_permission_ids']"),
	"filter.override_taxonomies": id("override_taxonomy_checkbox"),
	"filter.unlimited":           id("filter_unlimited"),
	"filter.search":              id("search"),
	"filter.taxonomy_disabled":   xpath("//a[@href='#organizations' and contains(@class,'disabled')]"),
}

// Users lists the locators of the user pages
var Users = Table{
	"users.new":              xpath("//a[@href='/users/new']"),
	"users.username":         id("user_login"),
	"users.firstname":        id("user_firstname"),
	"users.lastname":         id("user_lastname"),
	"users.email":            id("user_mail"),
	"users.language":         id("user_locale"),
	"users.selected_lang":    xpath("//select[@id='user_locale']/option[@selected='selected']"),
	"users.authorized_by":    id("user_auth_source_id"),
	"users.password":         id("user_password"),
	"users.password_confirm": id("user_password_confirmation"),
	"users.admin_role":       id("user_admin"),
	"users.user":             xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
	"users.delete":           xpath("//a[@data-method='delete' and contains(@data-confirm, '%s')]"),
	"users.dropdown":         xpath("//td/a[normalize-space(.)='%s']/following::td//a[@data-toggle='dropdown']"),
	"users.default_org":      id("user_default_organization_id"),
	"users.default_loc":      id("user_default_location_id"),
}

// Orgs lists the locators of the organization pages
var Orgs = Table{
	"org.new":         xpath("//a[@href='/organizations/new']"),
	"org.name":        id("organization_name"),
	"org.label":       id("organization_label"),
	"org.description": id("organization_description"),
	"org.proceed":     link("Proceed to Edit"),
	"org.org_name":    xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
}

// Locations lists the locators of the location pages
var Locations = Table{
	"location.new":         xpath("//a[@href='/locations/new']"),
	"location.name":        id("location_name"),
	"location.parent":      id("location_parent_id"),
	"location.proceed":     xpath("//a[contains(., 'Proceed to Edit')]"),
	"location.select_name": xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
}
