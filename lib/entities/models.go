// Package entities declares the server resources the suites work with and
// a service to create, read, update, delete and search them
package entities

import (
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/orm"
)

// Registry holds all server models
var Registry = orm.NewRegistry()

const nameMaxLength = 255

var (
	Organization = Registry.MustRegister(&orm.Model{
		Name: "Organization",
		Path: "katello/api/v2/organizations",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("label", orm.String),
		orm.NewField("description", orm.String),
	)

	Location = Registry.MustRegister(&orm.Model{
		Name:       "Location",
		Path:       "api/v2/locations",
		PayloadKey: "location",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
	)

	GPGKey = Registry.MustRegister(&orm.Model{
		Name: "GPGKey",
		Path: "katello/api/v2/gpg_keys",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("content", orm.String, orm.Required()),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
	)

	Product = Registry.MustRegister(&orm.Model{
		Name: "Product",
		Path: "katello/api/v2/products",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("label", orm.String),
		orm.NewField("description", orm.String),
		orm.NewOneToOne("gpg_key", "GPGKey"),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToOne("sync_plan", "SyncPlan"),
	)

	Repository = Registry.MustRegister(&orm.Model{
		Name: "Repository",
		Path: "katello/api/v2/repositories",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("label", orm.String),
		orm.NewField("content_type", orm.String, orm.Required(),
			orm.Choices(constants.RepoTypeYum, constants.RepoTypePuppet, constants.RepoTypeDocker),
			orm.Default(constants.RepoTypeYum)),
		orm.NewField("url", orm.URL, orm.Default(constants.FakeYumRepo)),
		orm.NewField("unprotected", orm.Boolean),
		orm.NewOneToOne("gpg_key", "GPGKey"),
		orm.NewOneToOne("product", "Product", orm.Required()),
	)

	SyncPlan = Registry.MustRegister(&orm.Model{
		Name: "SyncPlan",
		Path: "katello/api/v2/organizations/{organization}/sync_plans",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("description", orm.String),
		orm.NewField("enabled", orm.Boolean, orm.Required()),
		orm.NewField("interval", orm.String, orm.Required(), orm.Choices(constants.SyncIntervals...)),
		orm.NewField("sync_date", orm.DateTime, orm.Required()),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToMany("products", "Product"),
	)

	LifecycleEnvironment = Registry.MustRegister(&orm.Model{
		Name: "LifecycleEnvironment",
		Path: "katello/api/v2/environments",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("label", orm.String),
		orm.NewField("description", orm.String),
		orm.NewField("library", orm.Boolean),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToOne("prior", "LifecycleEnvironment"),
	)

	ContentView = Registry.MustRegister(&orm.Model{
		Name: "ContentView",
		Path: "katello/api/v2/content_views",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("label", orm.String),
		orm.NewField("description", orm.String),
		orm.NewField("composite", orm.Boolean),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToMany("repositories", "Repository"),
		orm.NewOneToMany("versions", "ContentViewVersion"),
	)

	ContentViewVersion = Registry.MustRegister(&orm.Model{
		Name: "ContentViewVersion",
		Path: "katello/api/v2/content_view_versions",
	},
		orm.NewField("version", orm.String),
		orm.NewField("description", orm.String),
		orm.NewOneToOne("content_view", "ContentView"),
		orm.NewOneToMany("environments", "LifecycleEnvironment"),
	)

	ContentViewFilter = Registry.MustRegister(&orm.Model{
		Name: "ContentViewFilter",
		Path: "katello/api/v2/content_view_filters",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("type", orm.String, orm.Required(),
			orm.Choices(constants.FilterTypeRPM, constants.FilterTypePackageGroup, constants.FilterTypeErratum),
			orm.Default(constants.FilterTypeRPM)),
		orm.NewField("inclusion", orm.Boolean),
		orm.NewOneToOne("content_view", "ContentView", orm.Required()),
	)

	ActivationKey = Registry.MustRegister(&orm.Model{
		Name: "ActivationKey",
		Path: "katello/api/v2/activation_keys",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("description", orm.String),
		orm.NewField("unlimited_content_hosts", orm.Boolean),
		orm.NewField("max_content_hosts", orm.Integer),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToOne("environment", "LifecycleEnvironment"),
		orm.NewOneToOne("content_view", "ContentView"),
	)

	Permission = Registry.MustRegister(&orm.Model{
		Name: "Permission",
		Path: "api/v2/permissions",
	},
		orm.NewField("name", orm.String, orm.Required()),
		orm.NewField("resource_type", orm.String),
	)

	Role = Registry.MustRegister(&orm.Model{
		Name:       "Role",
		Path:       "api/v2/roles",
		PayloadKey: "role",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewOneToMany("organizations", "Organization"),
		orm.NewOneToMany("locations", "Location"),
		orm.NewOneToMany("filters", "Filter"),
	)

	Filter = Registry.MustRegister(&orm.Model{
		Name:       "Filter",
		Path:       "api/v2/filters",
		PayloadKey: "filter",
	},
		orm.NewOneToOne("role", "Role", orm.Required()),
		orm.NewOneToMany("permissions", "Permission"),
		orm.NewField("search", orm.String),
		orm.NewField("unlimited", orm.Boolean),
		orm.NewField("override", orm.Boolean),
		orm.NewOneToMany("organizations", "Organization"),
		orm.NewOneToMany("locations", "Location"),
	)

	User = Registry.MustRegister(&orm.Model{
		Name:       "User",
		Path:       "api/v2/users",
		PayloadKey: "user",
	},
		orm.NewField("login", orm.String, orm.Required(), orm.MaxLength(100)),
		orm.NewField("password", orm.String, orm.Required()),
		orm.NewField("mail", orm.Email, orm.Required()),
		orm.NewField("firstname", orm.String, orm.MaxLength(50)),
		orm.NewField("lastname", orm.String, orm.MaxLength(50)),
		orm.NewField("admin", orm.Boolean),
		orm.NewField("auth_source_id", orm.Integer, orm.Required(), orm.Default(1)),
		orm.NewOneToOne("default_organization", "Organization"),
		orm.NewOneToOne("default_location", "Location"),
		orm.NewOneToMany("roles", "Role"),
		orm.NewOneToMany("organizations", "Organization"),
		orm.NewOneToMany("locations", "Location"),
	)

	Domain = Registry.MustRegister(&orm.Model{
		Name:       "Domain",
		Path:       "api/v2/domains",
		PayloadKey: "domain",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("fullname", orm.String),
		orm.NewOneToMany("organizations", "Organization"),
		orm.NewOneToMany("locations", "Location"),
	)

	Architecture = Registry.MustRegister(&orm.Model{
		Name:       "Architecture",
		Path:       "api/v2/architectures",
		PayloadKey: "architecture",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
	)

	HardwareModel = Registry.MustRegister(&orm.Model{
		Name:       "Model",
		Path:       "api/v2/models",
		PayloadKey: "model",
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("info", orm.String),
		orm.NewField("vendor_class", orm.String),
		orm.NewField("hardware_model", orm.String),
	)

	Host = Registry.MustRegister(&orm.Model{
		Name:       "Host",
		Path:       "api/v2/hosts",
		PayloadKey: "host",
		APINames:   map[string]string{"name": "host[name]"},
	},
		orm.NewField("name", orm.String, orm.Required(), orm.MaxLength(nameMaxLength)),
		orm.NewField("mac", orm.MACAddress, orm.Required()),
		orm.NewField("ip", orm.IPAddress),
		orm.NewField("root_pass", orm.String, orm.Required()),
		orm.NewOneToOne("architecture", "Architecture", orm.Required()),
		orm.NewOneToOne("domain", "Domain", orm.Required()),
		orm.NewOneToOne("model", "Model"),
		orm.NewOneToOne("organization", "Organization", orm.Required()),
		orm.NewOneToOne("location", "Location", orm.Required()),
	)
)

func init() {
	if err := Registry.Check(); err != nil {
		panic(err)
	}
}
