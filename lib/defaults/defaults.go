package defaults

import "time"

const (
	// RetryDelay defines the interval between retry attempts
	RetryDelay = 5 * time.Second
	// RetryAttempts defines the maximum number of retry attempts
	RetryAttempts = 100
	// RetryMaxDelay caps the exponential delay between retry attempts
	RetryMaxDelay = 30 * time.Second

	// TaskTimeout defines the amount of time to wait for a foreman task to finish
	TaskTimeout = 10 * time.Minute
	// TaskPollInterval defines the initial frequency of task polling attempts
	TaskPollInterval = 2 * time.Second
	// TaskMaxPollInterval caps the task polling interval
	TaskMaxPollInterval = 30 * time.Second

	// HTTPTimeout is the per-request timeout of the API client
	HTTPTimeout = 2 * time.Minute

	// ContentCountAttempts is how many times repository content counts are re-read
	// after a sync before the counts are considered wrong
	ContentCountAttempts = 10
	// ContentCountDelay is the pause between content count reads
	ContentCountDelay = 3 * time.Second

	// StringMaxLength is the upper bound for generated string field values
	StringMaxLength = 10000

	// ElementTimeout bounds the wait for a UI element
	ElementTimeout = 20 * time.Second

	// Locale is the default browser locale
	Locale = "en_US.UTF-8"

	// ConfigEnv names the environment variable pointing at the settings file
	ConfigEnv = "ROBOTTELO_CONFIG"

	// Browser is the default web browser
	Browser = "chrome"
	// WindowWidth and WindowHeight define the default browser window size
	WindowWidth  = 1920
	WindowHeight = 1080

	// SharedDirMask is the mode for directories created by the suites
	SharedDirMask = 0755
)

const (
	// RunPrefix starts the names of entities created by a test run
	RunPrefix = "robotest"
	// SpecTimeout bounds the API calls of a single spec
	SpecTimeout = 15 * time.Minute
)
