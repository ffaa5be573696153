// Package page implements the element lookup, waiting and form helpers
// the page objects are built on
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/satelliteqe/robotest/e2e/uimodel/defaults"
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/wait"

	"github.com/gravitational/trace"
	web "github.com/sclevine/agouti"
	log "github.com/sirupsen/logrus"
)

var common = locators.Common

// Base drives a browser page
type Base struct {
	// Page is the browser page
	Page *web.Page
	// Timeout bounds the wait for an element
	Timeout time.Duration
	// PollInterval is the pause between element lookups
	PollInterval time.Duration
	// FieldLogger specifies the log sink
	log.FieldLogger
}

// New returns a base for page. A zero timeout selects the default
func New(page *web.Page, timeout time.Duration) *Base {
	if timeout == 0 {
		timeout = defaults.ElementTimeout
	}
	return &Base{
		Page:         page,
		Timeout:      timeout,
		PollInterval: defaults.EventuallyPollInterval,
		FieldLogger:  log.WithField(trace.Component, "ui"),
	}
}

// Selection returns the selection of l. The selection is lazy: it is
// resolved when used
func Selection(page *web.Page, l locators.Locator) *web.Selection {
	switch l.By {
	case locators.XPath:
		return page.FindByXPath(l.Value)
	case locators.ID:
		return page.FindByID(l.Value)
	case locators.Name:
		return page.FindByName(l.Value)
	case locators.Link:
		return page.FindByLink(l.Value)
	case locators.Class:
		return page.FindByClass(l.Value)
	default:
		return page.Find(l.Value)
	}
}

// MultiSelection returns all elements matching l
func MultiSelection(page *web.Page, l locators.Locator) *web.MultiSelection {
	switch l.By {
	case locators.XPath:
		return page.AllByXPath(l.Value)
	case locators.ID:
		return page.AllByID(l.Value)
	case locators.Name:
		return page.AllByName(l.Value)
	case locators.Link:
		return page.AllByLink(l.Value)
	case locators.Class:
		return page.AllByClass(l.Value)
	default:
		return page.All(l.Value)
	}
}

// FindElement returns the first element matching l which is present
func (b *Base) FindElement(l locators.Locator) (*web.Selection, error) {
	if l.IsTemplate() {
		return nil, trace.BadParameter("locator %v is missing arguments", l)
	}
	all := MultiSelection(b.Page, l)
	count, err := all.Count()
	if err != nil || count == 0 {
		return nil, trace.NotFound("element %v not found", l)
	}
	return all.At(0), nil
}

// FindElements returns the text of every element matching l
func (b *Base) FindElements(l locators.Locator) ([]string, error) {
	all := MultiSelection(b.Page, l)
	count, err := all.Count()
	if err != nil {
		return nil, trace.NotFound("elements %v not found: %v", l, err)
	}
	texts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, err := all.At(i).Text()
		if err != nil {
			return nil, trace.Wrap(err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// IsElementVisible returns true if an element matching l is displayed
func (b *Base) IsElementVisible(l locators.Locator) bool {
	sel, err := b.FindElement(l)
	if err != nil {
		return false
	}
	visible, err := sel.Visible()
	return err == nil && visible
}

// WaitUntilElement waits for a visible element matching l.
// Returns trace.NotFound if there is none within the timeout
func (b *Base) WaitUntilElement(l locators.Locator) (*web.Selection, error) {
	return b.WaitUntilElementFor(l, b.Timeout)
}

// WaitUntilElementFor is WaitUntilElement with a custom timeout
func (b *Base) WaitUntilElementFor(l locators.Locator, timeout time.Duration) (*web.Selection, error) {
	var sel *web.Selection
	err := b.until(timeout, func() bool {
		if !b.IsElementVisible(l) {
			return false
		}
		sel, _ = b.FindElement(l)
		return sel != nil
	})
	if err != nil {
		b.logger(l).Debug("element did not appear")
		return nil, trace.NotFound("element %v not found after %v", l, timeout)
	}
	return sel, nil
}

// WaitUntilElementGone waits until no element matching l is visible
func (b *Base) WaitUntilElementGone(l locators.Locator) error {
	return b.WaitUntilElementGoneFor(l, b.Timeout)
}

// WaitUntilElementGoneFor is WaitUntilElementGone with a custom timeout
func (b *Base) WaitUntilElementGoneFor(l locators.Locator, timeout time.Duration) error {
	err := b.until(timeout, func() bool {
		return !b.IsElementVisible(l)
	})
	if err != nil {
		return trace.LimitExceeded("element %v still visible after %v", l, timeout)
	}
	return nil
}

// WaitForAjax waits until the page has no pending jQuery requests
func (b *Base) WaitForAjax() error {
	err := b.until(defaults.AjaxCallTimeout, func() bool {
		var active int
		if err := b.Page.RunScript("return window.jQuery ? jQuery.active : 0;", nil, &active); err != nil {
			return false
		}
		return active == 0
	})
	if err != nil {
		return trace.LimitExceeded("AJAX requests still pending after %v", defaults.AjaxCallTimeout)
	}
	return nil
}

// Click waits for the element matching l, clicks it and waits for the
// requests it triggers
func (b *Base) Click(l locators.Locator) error {
	sel, err := b.WaitUntilElement(l)
	if err != nil {
		return trace.Wrap(err, "element %v was not found while trying to click", l)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(b.WaitForAjax())
}

// FieldUpdate replaces the contents of the input matching l
func (b *Base) FieldUpdate(l locators.Locator, value string) error {
	sel, err := b.WaitUntilElement(l)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Clear(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(sel.Fill(value))
}

// TypeInto types value into the input matching l without clearing it
func (b *Base) TypeInto(l locators.Locator, value string) error {
	sel, err := b.WaitUntilElement(l)
	if err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(sel.SendKeys(value))
}

// SelectByText selects the option with the visible text in the select matching l
func (b *Base) SelectByText(l locators.Locator, text string) error {
	sel, err := b.WaitUntilElement(l)
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Select(text); err != nil {
		return trace.Wrap(err, "failed to select %q in %v", text, l)
	}
	return trace.Wrap(b.WaitForAjax())
}

// SetChecked sets the state of the checkbox matching l
func (b *Base) SetChecked(l locators.Locator, checked bool) error {
	sel, err := b.WaitUntilElement(l)
	if err != nil {
		return trace.Wrap(err)
	}
	if checked {
		return trace.Wrap(sel.Check())
	}
	return trace.Wrap(sel.Uncheck())
}

// HandleAlert accepts the browser confirmation dialog when really is set
// and dismisses it otherwise
func (b *Base) HandleAlert(really bool) error {
	if really {
		return trace.Wrap(b.Page.ConfirmPopup())
	}
	return trace.Wrap(b.Page.CancelPopup())
}

// ScrollPage scrolls to the bottom of the page
func (b *Base) ScrollPage() error {
	return trace.Wrap(b.Page.RunScript("window.scrollTo(0, document.body.scrollHeight);", nil, nil))
}

// ScrollIntoView scrolls the element matching l into view
func (b *Base) ScrollIntoView(l locators.Locator) error {
	if l.By != locators.XPath {
		return trace.BadParameter("only xpath locators can be scrolled to, got %v", l)
	}
	script := `var el = document.evaluate(path, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue;
if (el) { el.scrollIntoView(true); }`
	return trace.Wrap(b.Page.RunScript(script, map[string]interface{}{"path": l.Value}, nil))
}

// SearchEntity searches the Foreman entity list for name and returns the
// matching row element. searchKey defaults to name.
// Returns trace.NotFound if no row matches
func (b *Base) SearchEntity(name string, row locators.Locator, searchKey string) (*web.Selection, error) {
	if searchKey == "" {
		searchKey = "name"
	}
	query := fmt.Sprintf("%v = %q", searchKey, name)
	if err := b.FieldUpdate(common.Get("search"), query); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := b.Click(common.Get("search_button")); err != nil {
		return nil, trace.Wrap(err)
	}
	return b.WaitUntilElement(row.Format(name))
}

// KatelloSearch searches a Katello entity table for name and returns the
// matching row element. Returns trace.NotFound if no row matches
func (b *Base) KatelloSearch(name string, row locators.Locator) (*web.Selection, error) {
	if err := b.FieldUpdate(common.Get("kt_search"), name); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := b.Click(common.Get("kt_search_button")); err != nil {
		return nil, trace.Wrap(err)
	}
	return b.WaitUntilElement(row.Format(name))
}

// DeleteEntity searches for name, opens the row dropdown if the entity has
// one, deletes the entity and answers the confirmation
func (b *Base) DeleteEntity(name string, really bool, row, remove, dropdown locators.Locator) error {
	if _, err := b.SearchEntity(name, row, ""); err != nil {
		return trace.Wrap(err)
	}
	if dropdown.Value != "" {
		if err := b.Click(dropdown.Format(name)); err != nil {
			return trace.Wrap(err)
		}
	}
	sel, err := b.WaitUntilElement(remove.Format(name))
	if err != nil {
		return trace.Wrap(err)
	}
	if err := sel.Click(); err != nil {
		return trace.Wrap(err)
	}
	if err := b.HandleAlert(really); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(b.WaitForAjax())
}

// ConfigureEntity opens tab and moves entities between the two lists of a
// multi-select: add are selected and remove are deselected.
// filterKey names the multi-select, like organization
func (b *Base) ConfigureEntity(add, remove []string, filterKey string, tab locators.Locator) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}
	if tab.Value != "" {
		if err := b.Click(tab); err != nil {
			return trace.Wrap(err)
		}
	}
	move := func(names []string, entry string) error {
		for _, name := range names {
			if err := b.FieldUpdate(common.Get("filter", filterKey), name); err != nil {
				return trace.Wrap(err)
			}
			if err := b.Click(common.Get(entry, name)); err != nil {
				return trace.Wrap(err, "failed to configure %v %q", filterKey, name)
			}
		}
		return nil
	}
	if err := move(add, "entity_select"); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(move(remove, "entity_deselect"))
}

// CheckSuccess waits for a success notification
func (b *Base) CheckSuccess() bool {
	return b.anyVisible(defaults.NotificationTimeout,
		common.Get("alert.success"), common.Get("alert.success_sub_form"), common.Get("notif.success"))
}

// CheckError waits for an error notification or a form validation error
func (b *Base) CheckError() bool {
	return b.anyVisible(defaults.NotificationTimeout,
		common.Get("alert.error"), common.Get("alert.error_sub_form"), common.Get("notif.error"),
		common.Get("haserror"), common.Get("common_haserror"))
}

func (b *Base) anyVisible(timeout time.Duration, list ...locators.Locator) bool {
	err := b.until(timeout, func() bool {
		for _, l := range list {
			if b.IsElementVisible(l) {
				return true
			}
		}
		return false
	})
	return err == nil
}

func (b *Base) until(timeout time.Duration, cond func() bool) error {
	return wait.Until(context.Background(), timeout, b.PollInterval, func() (bool, error) {
		return cond(), nil
	})
}

func (b *Base) logger(l locators.Locator) log.FieldLogger {
	return b.WithField(constants.FieldLocator, l.String())
}
