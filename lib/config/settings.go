package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"os"

	"github.com/satelliteqe/robotest/lib/defaults"

	"github.com/gravitational/configure"
	"github.com/gravitational/trace"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v2"
)

// Settings groups all configuration of a test run
type Settings struct {
	Server    Server    `yaml:"server"`
	UI        UI        `yaml:"ui"`
	Robottelo Robottelo `yaml:"robottelo"`
	Bugzilla  Bugzilla  `yaml:"bugzilla"`
	// Clients is an optional provisioning client section.
	// Tests that provision content hosts skip when it is absent
	Clients *Clients `yaml:"clients,omitempty"`
}

// Server describes the product server under test
type Server struct {
	Hostname string `yaml:"hostname" env:"ROBOTTELO_SERVER_HOSTNAME" validate:"required,hostname|ip"`
	Scheme   string `yaml:"scheme" env:"ROBOTTELO_SERVER_SCHEME" validate:"omitempty,oneof=http https"`
	Port     int    `yaml:"port" env:"ROBOTTELO_SERVER_PORT" validate:"gte=0,lte=65535"`
	// AdminUsername and AdminPassword are the credentials of the admin account
	AdminUsername string `yaml:"admin_username" env:"ROBOTTELO_SERVER_ADMIN_USERNAME" validate:"required"`
	AdminPassword string `yaml:"admin_password" env:"ROBOTTELO_SERVER_ADMIN_PASSWORD" validate:"required"`
	// VerifySSL enables TLS certificate verification
	VerifySSL bool `yaml:"verify_ssl" env:"ROBOTTELO_SERVER_VERIFY_SSL"`
	// Upstream is set when the server is a plain Foreman/Katello install rather than Satellite
	Upstream bool `yaml:"upstream" env:"ROBOTTELO_SERVER_UPSTREAM"`
	// Version optionally pins the server version instead of asking the server
	Version string `yaml:"version,omitempty" env:"ROBOTTELO_SERVER_VERSION"`
}

// URL returns the base URL of the server
func (r Server) URL() string {
	host := r.Hostname
	if r.Port != 0 {
		host = fmt.Sprintf("%v:%v", r.Hostname, r.Port)
	}
	u := url.URL{Scheme: r.Scheme, Host: host}
	return u.String()
}

// UI configures the web browser driving the product UI
type UI struct {
	Browser string `yaml:"browser" env:"ROBOTTELO_UI_BROWSER" validate:"omitempty,oneof=chrome firefox"`
	// WebDriverURL points at a remote Selenium endpoint. A local chromedriver is used if empty
	WebDriverURL string `yaml:"webdriver_url,omitempty" env:"ROBOTTELO_UI_WEBDRIVER_URL" validate:"omitempty,url"`
	Headless     bool   `yaml:"headless" env:"ROBOTTELO_UI_HEADLESS"`
	WindowWidth  int    `yaml:"window_width" validate:"gte=0"`
	WindowHeight int    `yaml:"window_height" validate:"gte=0"`
	// ScreenshotsPath is where screenshots of failed UI tests are saved
	ScreenshotsPath string  `yaml:"screenshots_path,omitempty" env:"ROBOTTELO_UI_SCREENSHOTS_PATH"`
	ElementTimeout  Timeout `yaml:"element_timeout" env:"ROBOTTELO_UI_ELEMENT_TIMEOUT"`
}

// Robottelo configures the behavior of the suites
type Robottelo struct {
	// RunOneDatapoint reduces every datapoint list to a single random element
	RunOneDatapoint  bool    `yaml:"run_one_datapoint" env:"ROBOTTELO_RUN_ONE_DATAPOINT"`
	TaskTimeout      Timeout `yaml:"task_timeout" env:"ROBOTTELO_TASK_TIMEOUT"`
	TaskPollInterval Timeout `yaml:"task_poll_interval"`
	Locale           string  `yaml:"locale" env:"ROBOTTELO_LOCALE"`
}

// Bugzilla lists known bugs. Tests guarded by an open bug are skipped
type Bugzilla struct {
	OpenBugs []int `yaml:"open_bugs"`
}

// IsOpen returns true if the given bug is known to be open
func (r Bugzilla) IsOpen(id int) bool {
	for _, bug := range r.OpenBugs {
		if bug == id {
			return true
		}
	}
	return false
}

// Clients describes the provisioning clients available to the suites
type Clients struct {
	ProvisioningServer string `yaml:"provisioning_server" validate:"required"`
	ImageDir           string `yaml:"image_dir"`
}

// CheckAndSetDefaults fills in unset values
func (r *Settings) CheckAndSetDefaults() error {
	if r.Server.Scheme == "" {
		r.Server.Scheme = "https"
	}
	if r.UI.Browser == "" {
		r.UI.Browser = defaults.Browser
	}
	if r.UI.WindowWidth == 0 {
		r.UI.WindowWidth = defaults.WindowWidth
	}
	if r.UI.WindowHeight == 0 {
		r.UI.WindowHeight = defaults.WindowHeight
	}
	if r.UI.ElementTimeout.Duration == 0 {
		r.UI.ElementTimeout.Duration = defaults.ElementTimeout
	}
	if r.Robottelo.TaskTimeout.Duration == 0 {
		r.Robottelo.TaskTimeout.Duration = defaults.TaskTimeout
	}
	if r.Robottelo.TaskPollInterval.Duration == 0 {
		r.Robottelo.TaskPollInterval.Duration = defaults.TaskPollInterval
	}
	if r.Robottelo.Locale == "" {
		r.Robottelo.Locale = defaults.Locale
	}
	return nil
}

// Load reads settings from the given YAML document, applies environment
// overrides and validates the result
func Load(r io.Reader) (*Settings, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	var settings Settings
	if err := yaml.UnmarshalStrict(data, &settings); err != nil {
		return nil, trace.BadParameter("failed to parse settings: %v", err)
	}
	if err := configure.ParseEnv(&settings); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := checkAndSetDefaults(&settings); err != nil {
		return nil, trace.Wrap(err)
	}
	return &settings, nil
}

// LoadFile reads settings from the file at path
func LoadFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	defer f.Close()
	settings, err := Load(f)
	if err != nil {
		return nil, trace.Wrap(err, "failed to load %v", path)
	}
	return settings, nil
}

// FromEnv loads settings from the file named by defaults.ConfigEnv.
// Returns trace.NotFound if the variable is unset
func FromEnv() (*Settings, error) {
	path := os.Getenv(defaults.ConfigEnv)
	if path == "" {
		return nil, trace.NotFound("%v is not set", defaults.ConfigEnv)
	}
	return LoadFile(path)
}

type defaulter interface {
	CheckAndSetDefaults() error
}

// checkAndSetDefaults validates parameters according to struct field tags and
// custom logic specified by implementing the defaulter interface.
func checkAndSetDefaults(param interface{}) error {
	if d, ok := param.(defaulter); ok {
		if err := d.CheckAndSetDefaults(); err != nil {
			return trace.Wrap(err)
		}
	}
	if err := validator.New().Struct(param); err != nil {
		return trace.BadParameter("invalid settings: %v", err)
	}
	return nil
}
