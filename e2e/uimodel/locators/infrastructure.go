package locators

// Domains lists the locators of the domain pages
var Domains = Table{
	"domain.new":         xpath("//a[@href='/domains/new']"),
	"domain.name":        id("domain_name"),
	"domain.description": id("domain_fullname"),
	"domain.domain_name": xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
	"domain.delete":      xpath("//a[@data-method='delete' and contains(@data-confirm, '%s')]"),
}

// Templates lists the locators of the provisioning template pages
var Templates = Table{
	"provision.template_new":      xpath("//a[@href='/templates/provisioning_templates/new']"),
	"provision.template_name":     id("provisioning_template_name"),
	"provision.template_template": xpath("//input[@id='provisioning_template_template']"),
	"provision.template_type":     id("provisioning_template_template_kind_id"),
	"provision.template_snippet":  id("provisioning_template_snippet"),
	"provision.audit_comment":     id("provisioning_template_audit_comment"),
	"provision.template_select":   xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
	"provision.template_dropdown": xpath("//td/a[normalize-space(.)='%s']/following::td//a[@data-toggle='dropdown']"),
	"provision.template_delete":   xpath("//a[@data-method='delete' and contains(@data-confirm, '%s')]"),
}

// Architectures lists the locators of the architecture pages
var Architectures = Table{
	"arch.new":       xpath("//a[@href='/architectures/new']"),
	"arch.name":      id("architecture_name"),
	"arch.arch_name": xpath("//a[normalize-space(.)='%s' and contains(@href,'edit')]"),
	"arch.delete":    xpath("//a[@data-method='delete' and contains(@data-confirm, '%s')]"),
}
