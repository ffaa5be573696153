package defaults

import "time"

const (
	// AjaxCallTimeout specifies the amount of time needed to complete AJAX request
	AjaxCallTimeout = 30 * time.Second
	// PageLoadTimeout specifies the amount of time needed for a page to load after login
	PageLoadTimeout = 40 * time.Second
	// ElementTimeout defines the timeout to use for element lookups
	ElementTimeout = 20 * time.Second
	// EventuallyPollInterval defines the frequency of Eventually polling attempts
	EventuallyPollInterval = 300 * time.Millisecond

	// NotificationTimeout is how long to wait for a success or error notification
	NotificationTimeout = 10 * time.Second
	// MenuTimeout is how long to wait for a menu that may be hidden by missing permissions
	MenuTimeout = 3 * time.Second

	// ProgressTimeout specifies the amount of time for a publish, promote or
	// version removal to finish
	ProgressTimeout = 10 * time.Minute
	// ProgressPollInterval defines poll interval for checking progress bars
	ProgressPollInterval = 2 * time.Second
)
