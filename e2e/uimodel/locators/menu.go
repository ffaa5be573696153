package locators

func topMenu(text string) Locator {
	return xpath("//div[@id='menu']//a[contains(@class,'dropdown-toggle') and normalize-space(.)='" + text + "']")
}

func menuItem(item string) Locator {
	return xpath("//a[@id='menu_item_" + item + "']")
}

// Menu lists the top level menus and their entries
var Menu = Table{
	"menu.monitor":        topMenu("Monitor"),
	"menu.content":        topMenu("Content"),
	"menu.hosts":          topMenu("Hosts"),
	"menu.configure":      topMenu("Configure"),
	"menu.infrastructure": topMenu("Infrastructure"),
	"menu.administer":     topMenu("Administer"),

	"menu.lifecycle_environments": menuItem("environments"),
	"menu.content_views":          menuItem("content_views"),
	"menu.products":               menuItem("products"),
	"menu.sync_plans":             menuItem("sync_plans"),
	"menu.provisioning_templates": menuItem("provisioning_templates"),
	"menu.architectures":          menuItem("architectures"),
	"menu.domains":                menuItem("domains"),
	"menu.organizations":          menuItem("organizations"),
	"menu.locations":              menuItem("locations"),
	"menu.users":                  menuItem("users"),
	"menu.roles":                  menuItem("roles"),

	"org.any_context": xpath("//li[contains(@class,'org-switcher')]/a"),
	"org.select_org":  xpath("//li[contains(@class,'org-switcher')]//a[contains(@href,'select') and normalize-space(.)='%s']"),
	"loc.any_context": xpath("//li[contains(@class,'loc-switcher')]/a"),
	"loc.select_loc":  xpath("//li[contains(@class,'loc-switcher')]//a[contains(@href,'select') and normalize-space(.)='%s']"),
}
