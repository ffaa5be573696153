// Package api is a client of the server REST API.
//
// Responses with a non-2xx status are returned as errors which satisfy
// IsHTTPError and the trace classifiers: 404 is trace.IsNotFound, 401 and 403
// are trace.IsAccessDenied, 409 is trace.IsAlreadyExists and 400 and 422 are
// trace.IsBadParameter
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/satelliteqe/robotest/lib/config"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/defaults"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Config configures a Client
type Config struct {
	// URL is the server base URL, such as https://sat.example.com
	URL string
	// Username and Password authenticate every request
	Username string
	Password string
	// VerifySSL enables TLS certificate verification
	VerifySSL bool
	// TaskTimeout bounds WaitForTask
	TaskTimeout time.Duration
	// TaskPollInterval is the initial task polling interval
	TaskPollInterval time.Duration
	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client
	// FieldLogger specifies the log sink
	log.FieldLogger
}

// CheckAndSetDefaults validates the config and fills in unset values
func (r *Config) CheckAndSetDefaults() error {
	if r.URL == "" {
		return trace.BadParameter("missing server URL")
	}
	if _, err := url.Parse(r.URL); err != nil {
		return trace.BadParameter("invalid server URL %q: %v", r.URL, err)
	}
	if r.TaskTimeout == 0 {
		r.TaskTimeout = defaults.TaskTimeout
	}
	if r.TaskPollInterval == 0 {
		r.TaskPollInterval = defaults.TaskPollInterval
	}
	if r.HTTPClient == nil {
		r.HTTPClient = &http.Client{
			Timeout: defaults.HTTPTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !r.VerifySSL},
			},
		}
	}
	if r.FieldLogger == nil {
		r.FieldLogger = log.WithField(trace.Component, "api")
	}
	return nil
}

// ConfigFromSettings returns a client config for the admin user
func ConfigFromSettings(settings config.Settings) Config {
	return Config{
		URL:              settings.Server.URL(),
		Username:         settings.Server.AdminUsername,
		Password:         settings.Server.AdminPassword,
		VerifySSL:        settings.Server.VerifySSL,
		TaskTimeout:      settings.Robottelo.TaskTimeout.Duration,
		TaskPollInterval: settings.Robottelo.TaskPollInterval.Duration,
	}
}

// Client issues requests against the server API
type Client struct {
	Config
	base *url.URL
}

// New returns a new client
func New(cfg Config) (*Client, error) {
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.URL, "/") + "/")
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &Client{Config: cfg, base: base}, nil
}

// WithCredentials returns a copy of the client authenticating as another user
func (c *Client) WithCredentials(username, password string) *Client {
	clone := *c
	clone.Username = username
	clone.Password = password
	return &clone
}

// Endpoint returns the absolute URL of path
func (c *Client) Endpoint(path string, query url.Values) string {
	u := c.base.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(query) != 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends a request with an optional JSON body and returns the raw response.
// The status is not checked. The caller closes the response body
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.Endpoint(path, query), reader)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	req = req.WithContext(ctx)
	req.SetBasicAuth(c.Username, c.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.WithFields(log.Fields{"method": method, constants.FieldPath: path}).Debug("request")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, trace.ConnectionProblem(err, "%v %v failed", method, path)
	}
	return resp, nil
}

// Get reads path and decodes the JSON response into out unless out is nil
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return trace.Wrap(c.call(ctx, http.MethodGet, path, query, nil, out))
}

// Post sends body to path and decodes the JSON response into out unless out is nil
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return trace.Wrap(c.call(ctx, http.MethodPost, path, nil, body, out))
}

// Put sends body to path and decodes the JSON response into out unless out is nil
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return trace.Wrap(c.call(ctx, http.MethodPut, path, nil, body, out))
}

// Delete deletes path and decodes the JSON response into out unless out is nil
func (c *Client) Delete(ctx context.Context, path string, body, out interface{}) error {
	return trace.Wrap(c.call(ctx, http.MethodDelete, path, nil, body, out))
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return trace.Wrap(err)
	}
	defer resp.Body.Close()
	if err := RaiseForStatus(resp); err != nil {
		return trace.Wrap(err)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return trace.BadParameter("%v %v: cannot decode response: %v", method, path, err)
	}
	return nil
}

// Page is a page of search results
type Page struct {
	Total    int               `json:"total"`
	Subtotal int               `json:"subtotal"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
	Results  []json.RawMessage `json:"results"`
}

// perPage is the page size used when listing collections
const perPage = 100

// List reads every page of the collection at path
func (c *Client) List(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	var out []json.RawMessage
	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(perPage))
		var p Page
		if err := c.Get(ctx, path, params, &p); err != nil {
			return nil, trace.Wrap(err)
		}
		out = append(out, p.Results...)
		if len(p.Results) == 0 || len(out) >= p.Subtotal {
			return out, nil
		}
	}
}
