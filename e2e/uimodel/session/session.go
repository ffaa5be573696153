// Package session logs into the web UI and navigates between its pages
package session

import (
	"strings"

	"github.com/satelliteqe/robotest/e2e/uimodel/defaults"
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/utils"

	"github.com/gravitational/trace"
)

var login = locators.Login

// Session is a logged in browser session
type Session struct {
	*page.Base
	// Nav navigates between the pages of the UI
	Nav Navigator
	// URL is the server base URL
	URL string
	// Username is the logged in user
	Username string
}

// Login signs in at baseURL as username
func Login(b *page.Base, baseURL, username, password string) (*Session, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if err := b.Page.Navigate(baseURL + "/users/login"); err != nil {
		return nil, trace.Wrap(err)
	}
	if !utils.IsLoginPage(b) {
		// still signed in from a previous session
		if err := logout(b); err != nil {
			return nil, trace.Wrap(err)
		}
	}
	if err := b.FieldUpdate(login.Get("username"), username); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := b.FieldUpdate(login.Get("password"), password); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := b.Click(login.Get("submit")); err != nil {
		return nil, trace.Wrap(err)
	}
	if _, err := b.WaitUntilElementFor(login.Get("account"), defaults.PageLoadTimeout); err != nil {
		if b.IsElementVisible(locators.Common.Get("alert.error")) || utils.IsLoginPage(b) {
			return nil, trace.AccessDenied("failed to log in as %v", username)
		}
		return nil, trace.Wrap(err)
	}
	b.Infof("logged in as %v", username)
	return &Session{
		Base:     b,
		Nav:      Navigator{Base: b},
		URL:      baseURL,
		Username: username,
	}, nil
}

// Close logs out
func (s *Session) Close() error {
	return trace.Wrap(logout(s.Base))
}

func logout(b *page.Base) error {
	if err := b.Click(login.Get("account")); err != nil {
		return trace.Wrap(err)
	}
	if err := b.Click(login.Get("logout")); err != nil {
		return trace.Wrap(err)
	}
	_, err := b.WaitUntilElement(login.Get("username"))
	return trace.Wrap(err)
}
