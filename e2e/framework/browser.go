package framework

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/satelliteqe/robotest/lib/config"
	"github.com/satelliteqe/robotest/lib/defaults"

	"github.com/gravitational/trace"
	. "github.com/onsi/ginkgo"
	web "github.com/sclevine/agouti"
	log "github.com/sirupsen/logrus"
)

var driver *web.WebDriver

// NewPage opens a browser page as configured by the ui settings.
// With a webdriver URL the page is created on the remote endpoint,
// otherwise a local driver is started once per suite
func NewPage() (*web.Page, error) {
	settings := TestContext.Settings.UI
	var page *web.Page
	var err error
	if settings.WebDriverURL != "" {
		options := append(browserOptions(settings, TestContext.Settings.Robottelo.Locale), web.Browser(settings.Browser))
		page, err = web.NewPage(settings.WebDriverURL, options...)
	} else {
		page, err = localPage(settings, TestContext.Settings.Robottelo.Locale)
	}
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if err := page.Size(settings.WindowWidth, settings.WindowHeight); err != nil {
		return nil, trace.Wrap(err)
	}
	return page, nil
}

// ClosePage ends the browser session of page
func ClosePage(page *web.Page) error {
	if page == nil {
		return nil
	}
	return trace.Wrap(page.Destroy())
}

func localPage(settings config.UI, locale string) (*web.Page, error) {
	if driver == nil {
		d := newDriver(settings, locale)
		if err := d.Start(); err != nil {
			return nil, trace.Wrap(err, "failed to start %v driver", settings.Browser)
		}
		driver = d
	}
	page, err := driver.NewPage()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return page, nil
}

func newDriver(settings config.UI, locale string) *web.WebDriver {
	options := browserOptions(settings, locale)
	switch settings.Browser {
	case "firefox":
		return web.GeckoDriver(options...)
	default:
		return web.ChromeDriver(options...)
	}
}

// browserOptions applies the locale and headless mode of the settings
func browserOptions(settings config.UI, locale string) []web.Option {
	lang := acceptLanguage(locale)
	switch settings.Browser {
	case "firefox":
		return []web.Option{web.Desired(web.Capabilities{
			"moz:firefoxOptions": firefoxOptions(settings, lang),
		})}
	default:
		return []web.Option{
			web.ChromeOptions("args", chromeArgs(settings, lang)),
			web.ChromeOptions("prefs", map[string]interface{}{"intl.accept_languages": lang}),
		}
	}
}

func chromeArgs(settings config.UI, lang string) []string {
	args := []string{"--lang=" + lang}
	if settings.Headless {
		args = append(args, "--headless", "--disable-gpu", "--no-sandbox")
	}
	return args
}

func firefoxOptions(settings config.UI, lang string) map[string]interface{} {
	options := map[string]interface{}{
		"prefs": map[string]interface{}{"intl.accept_languages": lang},
	}
	if settings.Headless {
		options["args"] = []string{"-headless"}
	}
	return options
}

// acceptLanguage converts a POSIX locale like en_US.UTF-8 to a language tag like en-US
func acceptLanguage(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.Replace(locale, "_", "-", -1)
}

func stopDriver() error {
	if driver == nil {
		return nil
	}
	err := driver.Stop()
	driver = nil
	return trace.Wrap(err)
}

// ScreenshotOnFailure saves a screenshot of page if the current spec failed
// and a screenshots path is configured
func ScreenshotOnFailure(page *web.Page) {
	desc := CurrentGinkgoTestDescription()
	if !desc.Failed || page == nil {
		return
	}
	dir := TestContext.Settings.UI.ScreenshotsPath
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, defaults.SharedDirMask); err != nil {
		log.Warnf("failed to create screenshot directory: %v", trace.DebugReport(err))
		return
	}
	path := filepath.Join(dir, screenshotName(desc.FullTestText)+".png")
	if err := page.Screenshot(path); err != nil {
		log.Warnf("failed to save screenshot: %v", err)
		return
	}
	log.Infof("saved screenshot %v", path)
}

// maxScreenshotName bounds the length of screenshot file names in characters
const maxScreenshotName = 200

func screenshotName(text string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, text)
	if runes := []rune(name); len(runes) > maxScreenshotName {
		name = string(runes[:maxScreenshotName])
	}
	return name
}
