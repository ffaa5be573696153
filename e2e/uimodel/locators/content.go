package locators

// ContentViews lists the locators of the content view pages
var ContentViews = Table{
	"contentviews.new":       xpath("//a[@ui-sref='content-views.new']"),
	"contentviews.name":      id("name"),
	"contentviews.label":     id("label"),
	"contentviews.has_error": xpath("//div[contains(@class, 'has-error') and contains(@class, 'form-group')]"),
	"contentviews.composite": id("composite"),
	"contentviews.select":    xpath("//a[@ui-sref='content-view.versions({contentViewId: contentView.id})' and contains(., '%s')]"),

	"contentviews.edit_name":               xpath("//form[@bst-edit-text='contentView.name']//div[@ng-click='edit()']"),
	"contentviews.edit_name_text":          xpath("//form[@bst-edit-text='contentView.name']//input"),
	"contentviews.edit_description":        xpath("//form[@bst-edit-textarea='contentView.description']//div[@ng-click='edit()']"),
	"contentviews.edit_description_text":   xpath("//form[@bst-edit-textarea='contentView.description']//textarea"),
	"contentviews.save_edit":               xpath("//button[@ng-click='save()' and not(contains(@class,'ng-hide'))]"),
	"contentviews.remove":                  xpath("//button[@ui-sref='content-view.deletion']"),
	"contentviews.confirm_remove":          xpath("//button[@ng-click='removeContentView()']"),
	"contentviews.select_repo":             xpath("//tr[td[2][normalize-space(.)='%s']]/td/input[@type='checkbox']"),
	"contentviews.add_repo":                xpath("//button[@ng-click='addRepositories(contentView)']"),
	"contentviews.remove_repo":             xpath("//button[@ng-click='removeRepositories(contentView)']"),
	"contentviews.publish":                 xpath("//button[@ui-sref='content-view.publish']"),
	"contentviews.publish_description":     id("description"),
	"contentviews.publish_save":            xpath("//button[@ng-click='publish(contentView)']"),
	"contentviews.publish_progress":        xpath("//tr[td[1][normalize-space(.)='%s']]//div[contains(@class,'progress-bar')]"),
	"contentviews.version_name":            xpath("(//table//a[contains(@ui-sref, 'content-view.version') and starts-with(normalize-space(.), 'Version')])[1]"),
	"contentviews.version_row":             xpath("//table//tr[td[1][normalize-space(.)='%s']]"),
	"contentviews.version_environments":    xpath("//table//tr[td[1][normalize-space(.)='%s']]/td[2]/ul/li"),
	"contentviews.promote_button":          xpath("//table//tr[td[1][normalize-space(.)='%s']]//button[@ui-sref='content-view.promotion({contentViewId: contentView.id, versionId: version.id})']"),
	"contentviews.select_env":              xpath("//input[@ng-model='item.selected' and ../span[normalize-space(.)='%s']]"),
	"contentviews.promote_version":         xpath("//button[@ng-click='verifySelection()']"),
	"contentviews.force_promote":           xpath("//button[@ng-click='ok()']"),
	"contentviews.version_dropdown":        xpath("//table//tr[td[1][normalize-space(.)='%s']]//button[contains(@class,'dropdown-toggle')]"),
	"contentviews.version_remove":          xpath("//table//tr[td[1][normalize-space(.)='%s']]//a[@ui-sref='content-view.version.deletion.environments({contentViewId: contentView.id, versionId: version.id})']"),
	"contentviews.remove_select_all_env":   xpath("//input[@ng-model='selection.allSelected']"),
	"contentviews.remove_env_checkbox":     xpath("//tr[td[2][normalize-space(.)='%s']]/td/input[@type='checkbox']"),
	"contentviews.delete_version_checkbox": xpath("//input[@ng-model='deleteOptions.deleteArchive']"),
	"contentviews.remove_next":             xpath("//button[@ng-click='processSelection()']"),
	"contentviews.confirm_remove_version":  xpath("//button[@ng-click='performDeletion()']"),
	"contentviews.version_cannot_delete":   xpath("//div[contains(@class,'alert') and contains(., 'activation key')]"),

	"contentviews.new_filter":        xpath("//button[@ui-sref='content-view.yum.filters.new']"),
	"contentviews.filter_name":       id("name"),
	"contentviews.content_type":      id("type"),
	"contentviews.type":              id("inclusion"),
	"contentviews.filter_checkbox":   xpath("//tr[td[2][normalize-space(.)='%s']]/td/input[@type='checkbox']"),
	"contentviews.remove_filter":     xpath("//button[@ng-click='removeFilters()']"),
	"contentviews.search_filters":    xpath("//input[@ng-model='filterTable.searchTerm']"),
	"contentviews.search_filter_row": xpath("//tr/td[2]/a[normalize-space(.)='%s']"),

	"contentviews.add_rule":         xpath("//button[@ng-click='addRule(filter)']"),
	"contentviews.rule_name":        xpath("(//tr[@ng-repeat='rule in filter.rules | filter:filterTable'])[last()]//input[@ng-model='rule.name']"),
	"contentviews.rule_version":     xpath("(//tr[@ng-repeat='rule in filter.rules | filter:filterTable'])[last()]//select[@ng-model='rule.type']"),
	"contentviews.rule_min_version": xpath("(//tr[@ng-repeat='rule in filter.rules | filter:filterTable'])[last()]//input[@ng-model='rule.min_version' or @ng-model='rule.version']"),
	"contentviews.rule_max_version": xpath("(//tr[@ng-repeat='rule in filter.rules | filter:filterTable'])[last()]//input[@ng-model='rule.max_version']"),
	"contentviews.save_rule":        xpath("(//tr[@ng-repeat='rule in filter.rules | filter:filterTable'])[last()]//button[@ng-click='handleSave()']"),

	"contentviews.version_link":     xpath("//table//a[contains(@ui-sref, 'content-view.version') and normalize-space(.)='%s']"),
	"contentviews.version_packages": xpath("//a[contains(@ui-sref, 'content-view.version.packages')]"),
	"contentviews.package_row":      xpath("//tr[@ng-repeat='package in table.rows']/td[1][normalize-space(.)='%s']"),

	"contentviews.tab_cv_add":       xpath("//a[@ui-sref='content-view.content-views.available']"),
	"contentviews.tab_cv_remove":    xpath("//a[@ui-sref='content-view.content-views.list']"),
	"contentviews.select_cv":        xpath("//tr[td[2][normalize-space(.)='%s']]/td/input[@type='checkbox']"),
	"contentviews.add_cv":           xpath("//button[@ng-click='addContentViews()']"),
	"contentviews.remove_cv":        xpath("//button[@ng-click='removeContentViews()']"),
	"contentviews.components":       xpath("//tr[@row-select='contentView']/td[2]"),
	"contentviews.copy":             xpath("//button[@ng-click='showCopy = true']"),
	"contentviews.copy_name":        id("copy_name"),
	"contentviews.copy_create":      xpath("//button[@ng-click='copy(copyName)']"),
	"contentviews.yum_repositories": xpath("//tr[@row-select='repository']/td[2]/a"),
}

// Environments lists the locators of the lifecycle environment pages
var Environments = Table{
	"content_env.new":         xpath("//a[contains(@ui-sref, 'environments.new')]"),
	"content_env.new_prior":   xpath("//div[contains(@class,'path-list')][.//a[normalize-space(.)='%s']]//a[contains(@ui-sref, 'environments.new')]"),
	"content_env.select_name": xpath("//a[contains(@ui-sref, 'environment.details') and normalize-space(.)='%s']"),
	"content_env.remove":      xpath("//button[contains(@ng-show, 'readOnly') and contains(., 'Remove Environment')]"),
}
