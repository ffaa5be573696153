package locators

// Common lists locators shared by the Foreman and Katello pages
var Common = Table{
	"body": css("body"),

	"notif.error":   xpath("//div[contains(@class, 'jnotify-notification-error')]"),
	"notif.warning": xpath("//div[contains(@class, 'jnotify-notification-warning')]"),
	"notif.success": xpath("//div[contains(@class, 'jnotify-notification-success')]"),
	"notif.close":   xpath("//a[@class='jnotify-close']"),

	"alert.success":          xpath("//div[contains(@class, 'alert-success')]"),
	"alert.error":            xpath("//div[contains(@class, 'alert-danger')]"),
	"alert.success_sub_form": xpath("//div[@ng-hide]//div[contains(@class, 'alert-success')]"),
	"alert.error_sub_form":   xpath("//div[@ng-hide]//div[contains(@class, 'alert-danger')]"),

	"selected_entity": xpath("//div[@class='ms-selection']/ul[@class='ms-list']" +
		"/li[@class='ms-elem-selection ms-selected']"),
	"select_filtered_entity": xpath("//table//a/span[contains(@data-original-title, '%s')]"),
	"checked_entity":         xpath("//input[@checked='checked']/parent::label"),
	"entity_select": xpath("//div[@class='ms-selectable']//" +
		"li[not(contains(@style, 'display: none'))]/span[contains(.,'%s')]"),
	"entity_deselect": xpath("//div[@class='ms-selection']//" +
		"li[not(contains(@style, 'display: none'))]/span[contains(.,'%s')]"),
	"entity_checkbox":        xpath("//label[normalize-space(.)='%s']/input[@type='checkbox']"),
	"entity_select_list":     xpath("//ul/li/div[normalize-space(.)='%s']"),
	"select_list_search_box": xpath("//div[@id='select2-drop']//input"),

	"name_haserror":   xpath("//label[@for='name']/../../div[contains(@class,'has-error')]"),
	"haserror":        xpath("//div[contains(@class,'has-error')]"),
	"common_haserror": xpath("//span[@class='help-block']/ul/li[contains(@ng-repeat,'error.messages')]"),
	"table_haserror":  xpath("//tr[contains(@class,'has-error')]/td/span"),
	"common_invalid":  xpath("//input[@id='name' and contains(@class,'ng-invalid')]"),

	"search": id("search"),
	"auto_search": xpath("//ul[contains(@class, 'ui-autocomplete') or " +
		"contains(@template-url, 'autocomplete')]/li/a[contains(., '%s')]"),
	"search_button":   xpath("//button[contains(@type,'submit')]"),
	"search_dropdown": xpath("//button[contains(@class, 'dropdown-toggle')][@data-toggle='dropdown']"),
	"cancel_form":     xpath("//a[text()='Cancel']"),
	"submit":          name("commit"),
	"filter":          xpath("//div[@id='ms-%s_ids']//input[contains(@class,'ms-filter')]"),

	"application_logo": xpath("//img[contains(@alt, 'Header logo')]"),

	"confirm_remove": xpath("//button[@ng-click='ok()' or @ng-click='delete()']"),
	"create":         xpath("//button[contains(@ng-click,'Save')]"),
	"save":           xpath("//button[contains(@ng-click,'save') and not(contains(@class,'ng-hide'))]"),
	"cancel":         xpath("//button[@aria-label='Close']"),
	"name":           id("name"),
	"label":          id("label"),
	"description":    id("description"),

	"kt_search":              xpath("//input[@ng-model='table.searchTerm']"),
	"kt_search_button":       xpath("//button[@ng-click='table.search(table.searchTerm)']"),
	"kt_table_search":        xpath("//input[@ng-model='detailsTable.searchTerm']"),
	"kt_table_search_button": xpath("//button[@ng-click='detailsTable.search(detailsTable.searchTerm)']"),

	"all_values":       xpath("//div[contains(@class,'active')]//input[@type='checkbox' and contains(@name, '%s')]"),
	"modal_background": xpath("//*[@class='modal-backdrop fade in']"),
	"select_repo":      xpath("//select[@ng-model='repository']"),
}

// Login lists the locators of the login page and the account menu
var Login = Table{
	"username": id("login_login"),
	"password": id("login_password"),
	"submit":   name("commit"),
	"account":  xpath("//a[@id='account_menu']"),
	"logout":   xpath("//a[@href='/users/logout']"),
}
