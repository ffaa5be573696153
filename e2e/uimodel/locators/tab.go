package locators

func tab(href string) Locator {
	return xpath("//a[@data-toggle='tab' and @href='#" + href + "']")
}

// Tab lists the form tabs of the entity pages
var Tab = Table{
	"tab_primary": tab("primary"),
	"tab_org":     tab("organizations"),
	"tab_loc":     tab("locations"),

	"users.tab_primary":       tab("primary"),
	"users.tab_roles":         tab("roles"),
	"users.tab_organizations": tab("organizations"),
	"users.tab_locations":     tab("locations"),

	"roles.tab_org": tab("organizations"),
	"roles.tab_loc": tab("locations"),

	"provision.tab_type":        tab("template_type"),
	"provision.tab_association": tab("template_associations"),

	"architecture.tab_os": tab("primary"),

	"contentviews.tab_versions":     xpath("//a[@ui-sref='content-view.versions']"),
	"contentviews.tab_content":      xpath("//li[@uib-dropdown]/a[contains(., 'Yum Content')]"),
	"contentviews.tab_repositories": xpath("//a[@ui-sref='content-view.repositories.yum.list']"),
	"contentviews.tab_repo_add":     xpath("//a[@ui-sref='content-view.repositories.yum.available']"),
	"contentviews.tab_repo_remove":  xpath("//a[@ui-sref='content-view.repositories.yum.list' and contains(., 'List/Remove')]"),
	"contentviews.tab_filters":      xpath("//a[@ui-sref='content-view.yum.filters']"),
	"contentviews.tab_components":   xpath("//li[@uib-dropdown]/a[contains(., 'Content Views')]"),
}
