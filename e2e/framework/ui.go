package framework

import (
	"github.com/satelliteqe/robotest/e2e/uimodel"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// LoginAsAdmin opens a browser page and logs in with the admin credentials
func LoginAsAdmin() (*uimodel.UI, error) {
	server := TestContext.Settings.Server
	return LoginAs(server.AdminUsername, server.AdminPassword)
}

// LoginAs opens a browser page and logs in as username.
// The page is closed if the login fails
func LoginAs(username, password string) (*uimodel.UI, error) {
	page, err := NewPage()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	settings := TestContext.Settings
	ui, err := uimodel.Login(page, settings.UI.ElementTimeout.Duration, settings.Server.URL(), username, password)
	if err != nil {
		ClosePage(page)
		return nil, trace.Wrap(err)
	}
	return ui, nil
}

// Logout logs out and closes the page of the session
func Logout(ui *uimodel.UI) error {
	if ui == nil {
		return nil
	}
	err := ui.Logout()
	return trace.NewAggregate(err, ClosePage(ui.Session.Page))
}

// LogoutOrWarn logs out of ui for deferred cleanups. A failure is logged
// with the suite logger
func LogoutOrWarn(ui *uimodel.UI) {
	warnIf(suiteLogger(), Logout(ui), "failed to log out")
}

func warnIf(logger log.FieldLogger, err error, message string) {
	if err != nil {
		logger.WithError(err).Warn(message)
	}
}

func suiteLogger() log.FieldLogger {
	if TestContext.Logger != nil {
		return TestContext.Logger
	}
	return log.StandardLogger()
}
