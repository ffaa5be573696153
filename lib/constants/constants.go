package constants

const (
	// FieldEntity defines a logging field naming the entity kind
	FieldEntity = "entity"
	// FieldPath defines a logging field carrying the request path
	FieldPath = "path"
	// FieldTask defines a logging field carrying a foreman task id
	FieldTask = "task"
	// FieldLocator defines a logging field carrying a UI locator
	FieldLocator = "locator"
)

// Library is the root lifecycle environment every organization has
const Library = "Library"

// Interfaces the suites drive the server through
const (
	InterfaceAPI = "API"
	InterfaceCLI = "CLI"
	InterfaceUI  = "UI"
)

// Sync plan intervals
const (
	SyncIntervalHour = "hourly"
	SyncIntervalDay  = "daily"
	SyncIntervalWeek = "weekly"
)

// SyncIntervals lists all sync plan intervals accepted by the server
var SyncIntervals = []string{SyncIntervalHour, SyncIntervalDay, SyncIntervalWeek}

// SyncDateFormat is the layout the server uses to report sync plan dates
const SyncDateFormat = "2006/01/02 15:04:05 MST"

// Repository content types
const (
	RepoTypeYum    = "yum"
	RepoTypePuppet = "puppet"
	RepoTypeDocker = "docker"
)

// Content view filter types
const (
	FilterTypeRPM          = "rpm"
	FilterTypePackageGroup = "package_group"
	FilterTypeErratum      = "erratum"
)

// Content view filter inclusion modes, as shown by the UI
const (
	FilterInclude = "Include"
	FilterExclude = "Exclude"
)

// Multi-select filter keys in the entity forms
const (
	FilterOrganization = "organization"
	FilterLocation     = "location"
	FilterRole         = "role"
	FilterOS           = "operatingsystem"
	FilterTemplateOS   = "provisioning_template_operatingsystem"
	FilterUserRole     = "user_role"
)

// Fake repositories published for the test suites
const (
	FakeYumRepo    = "https://repos.fedorapeople.org/repos/pulp/pulp/fixtures/rpm/"
	FakePuppetRepo = "https://omaciel.fedorapeople.org/fakepuppet01/"
	FakeGPGKeyURL  = "https://repos.fedorapeople.org/repos/pulp/pulp/GPG-RPM-KEY-pulp-2"
)

// FakeYumRepoCounts lists the content counts of FakeYumRepo after a sync
var FakeYumRepoCounts = map[string]int{
	"rpm":           32,
	"erratum":       4,
	"package_group": 2,
}

// Resource types of filters and their permissions as the server names them
const (
	ResourceArchitecture = "Architecture"
	ResourceDomain       = "Domain"
	ResourceOrganization = "Organization"
	ResourceUser         = "User"
	ResourceProduct      = "Katello::Product"
	ResourceTemplate     = "ProvisioningTemplate"
	ResourceContentView  = "Katello::ContentView"
)

// PermissionsByResource lists the permissions the server defines per resource type
var PermissionsByResource = map[string][]string{
	ResourceArchitecture: {
		"view_architectures", "create_architectures",
		"edit_architectures", "destroy_architectures",
	},
	ResourceDomain: {
		"view_domains", "create_domains",
		"edit_domains", "destroy_domains",
	},
	ResourceOrganization: {
		"view_organizations", "create_organizations",
		"edit_organizations", "destroy_organizations",
		"assign_organizations",
	},
	ResourceUser: {
		"view_users", "create_users", "edit_users", "destroy_users",
	},
	ResourceProduct: {
		"view_products", "create_products", "edit_products",
		"destroy_products", "sync_products",
	},
	ResourceTemplate: {
		"view_provisioning_templates", "create_provisioning_templates",
		"edit_provisioning_templates", "destroy_provisioning_templates",
		"deploy_provisioning_templates",
	},
	ResourceContentView: {
		"view_content_views", "create_content_views", "edit_content_views",
		"destroy_content_views", "publish_content_views",
		"promote_or_remove_content_views",
	},
}

// TemplateTypes are the visible kinds of provisioning templates
var TemplateTypes = []string{"provision", "PXELinux", "iPXE", "finish", "user_data", "script"}

// DefaultOrg is the organization the server ships with
const DefaultOrg = "Default Organization"

// DefaultLoc is the location the server ships with
const DefaultLoc = "Default Location"

// DefaultArchitecture is the architecture the server ships with
const DefaultArchitecture = "x86_64"

// Languages lists visible names offered by the language field of the user form
var Languages = []string{
	"Browser locale", "Deutsch", "English", "English (United Kingdom)",
	"Español", "Français", "Italiano", "Português (Brasil)", "Svenska",
	"日本語", "한국어", "简体中文", "繁體中文",
}
