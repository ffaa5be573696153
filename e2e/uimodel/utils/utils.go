// Package utils holds page checks shared by the page objects
package utils

import (
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
)

// HasValidationErrors returns true if a form shows a validation error
func HasValidationErrors(b *page.Base) bool {
	return b.IsElementVisible(locators.Common.Get("haserror")) ||
		b.IsElementVisible(locators.Common.Get("common_haserror")) ||
		b.IsElementVisible(locators.Common.Get("name_haserror"))
}

// IsLoginPage returns true if the browser shows the login form
func IsLoginPage(b *page.Base) bool {
	return b.IsElementVisible(locators.Login.Get("username"))
}
