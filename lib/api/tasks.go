package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/defaults"
	"github.com/satelliteqe/robotest/lib/wait"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/hashicorp/go-version"
)

// Task is an asynchronous server task
type Task struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	State     string     `json:"state"`
	Result    string     `json:"result"`
	Progress  float64    `json:"progress"`
	StartedAt string     `json:"started_at"`
	Humanized *Humanized `json:"humanized,omitempty"`
}

// Humanized carries the human readable task details
type Humanized struct {
	Action string   `json:"action"`
	Errors []string `json:"errors"`
}

// Task states and results
const (
	TaskStateStopped = "stopped"
	TaskStatePaused  = "paused"
	TaskResultOK     = "success"
)

// Done returns true once the task stopped running
func (t Task) Done() bool {
	return t.State == TaskStateStopped || t.State == TaskStatePaused
}

// Err returns an error describing a failed task
func (t Task) Err() error {
	if t.Result == TaskResultOK {
		return nil
	}
	var errors []string
	if t.Humanized != nil {
		errors = t.Humanized.Errors
	}
	return trace.CompareFailed("task %v (%v) finished with result %q: %v",
		t.ID, t.Label, t.Result, strings.Join(errors, "; "))
}

// IsTask returns true if the response body describes a foreman task
func IsTask(data []byte) bool {
	var task struct {
		ID    interface{} `json:"id"`
		Label string      `json:"label"`
		State string      `json:"state"`
	}
	if err := json.Unmarshal(data, &task); err != nil {
		return false
	}
	_, isUUID := task.ID.(string)
	return isUUID && task.Label != "" && task.State != ""
}

func taskPath(id string) string {
	return fmt.Sprintf("foreman_tasks/api/tasks/%v", id)
}

// ReadTask returns the current state of the task
func (c *Client) ReadTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.Get(ctx, taskPath(id), nil, &task); err != nil {
		return nil, trace.Wrap(err)
	}
	return &task, nil
}

// WaitForTask polls the task until it stops or TaskTimeout elapses.
// A task which did not finish successfully is an error
func (c *Client) WaitForTask(ctx context.Context, id string) (*Task, error) {
	logger := c.WithField(constants.FieldTask, id)
	start := time.Now()
	b := wait.NewExponentialBackOff(c.TaskPollInterval, defaults.TaskMaxPollInterval, c.TaskTimeout)
	var task *Task
	err := wait.RetryWithInterval(ctx, b, func() error {
		t, err := c.ReadTask(ctx, id)
		if err != nil {
			if trace.IsNotFound(err) || trace.IsAccessDenied(err) {
				return wait.Abort(err)
			}
			return trace.Wrap(err)
		}
		task = t
		if !t.Done() {
			return trace.CompareFailed("task %v is %v (%.0f%%)", id, t.State, t.Progress*100)
		}
		return nil
	}, logger)
	if err != nil {
		return task, trace.Wrap(err, "waiting for task %v", id)
	}
	logger.Debugf("task %v finished, started %v", task.Label, humanize.Time(start))
	if err := task.Err(); err != nil {
		return task, trace.Wrap(err)
	}
	return task, nil
}

// Status describes the server
type Status struct {
	Version    string `json:"version"`
	APIVersion int    `json:"api_version"`
	Result     string `json:"result"`
}

// ServerVersion parses the reported version
func (s Status) ServerVersion() (*version.Version, error) {
	v, err := version.NewVersion(s.Version)
	if err != nil {
		return nil, trace.BadParameter("invalid server version %q: %v", s.Version, err)
	}
	return v, nil
}

// Status returns the server status
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.Get(ctx, "api/v2/status", nil, &status); err != nil {
		return nil, trace.Wrap(err)
	}
	return &status, nil
}
