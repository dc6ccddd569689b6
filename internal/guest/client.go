package guest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zerobloat/shell/internal/infrastructure/resilience"
)

// Client talks to the guest backend that owns the virtual machine: process
// lifecycle, disk mounting, and in-image file operations. The window core
// never inspects this collaborator; it only reacts to the open/close and
// shortcut commands the server derives from these calls.
type Client struct {
	http    *resty.Client
	breaker *resilience.Breaker
}

// New creates a guest backend client. A circuit breaker guards every call:
// once the backend fails repeatedly the client rejects requests locally
// until a cooldown probe succeeds.
func New(baseURL string) *Client {
	breaker := resilience.NewBreaker("guest", resilience.Settings{
		FailureThreshold: 5,
		Cooldown:         15 * time.Second,
	})

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	http.OnBeforeRequest(func(_ *resty.Client, _ *resty.Request) error {
		if !breaker.Allow() {
			return resilience.ErrCircuitOpen
		}
		return nil
	})
	http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			breaker.RecordFailure()
		} else {
			breaker.RecordSuccess()
		}
		return nil
	})
	http.OnError(func(_ *resty.Request, err error) {
		// locally rejected calls are not backend failures
		if !errors.Is(err, resilience.ErrCircuitOpen) {
			breaker.RecordFailure()
		}
	})

	return &Client{http: http, breaker: breaker}
}

// BreakerState exposes the circuit breaker state for health reporting
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Start spawns the VM for an image and returns its PID immediately; it
// does not wait for the guest to become reachable.
func (c *Client) Start(ctx context.Context, imagePath string) (int, error) {
	var result struct {
		statusEnvelope
		PID int `json:"pid"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"image_path": imagePath}).
		SetResult(&result).
		Post("/api/core/start")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return 0, fmt.Errorf("start vm: %w", err)
	}
	return result.PID, nil
}

// Stop shuts the VM down
func (c *Client) Stop(ctx context.Context) error {
	var result statusEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Post("/api/core/stop")
	if err := c.check(resp, err, result); err != nil {
		return fmt.Errorf("stop vm: %w", err)
	}
	return nil
}

// Status reports stopped/starting/running
func (c *Client) Status(ctx context.Context) (Status, error) {
	var result Status
	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get("/api/core/status")
	if err := c.check(resp, err, statusEnvelope{Status: "ok"}); err != nil {
		return Status{}, fmt.Errorf("vm status: %w", err)
	}
	return result, nil
}

// Drives lists host drive mount points
func (c *Client) Drives(ctx context.Context) ([]string, error) {
	var result struct {
		statusEnvelope
		Drives []string `json:"drives"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get("/api/system/drives")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}
	return result.Drives, nil
}

// Folders lists directories and shortcuts under a host path
func (c *Client) Folders(ctx context.Context, path string) ([]Entry, error) {
	var result struct {
		statusEnvelope
		Entries []Entry `json:"entries"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"path": path}).
		SetResult(&result).
		Post("/api/system/folders")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return result.Entries, nil
}

// Connect starts the VM for an image, waits for the guest, and mounts its
// disk. The returned mount device and partitions feed the dynamic
// FileExplorer shortcut.
func (c *Client) Connect(ctx context.Context, imagePath string) (ConnectResult, error) {
	var result struct {
		statusEnvelope
		ConnectResult
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"filepath": imagePath}).
		SetResult(&result).
		Post("/api/connect")
	// connect reports "connected" instead of "ok"
	if err == nil && resp != nil && resp.IsSuccess() && result.Status == "connected" {
		return result.ConnectResult, nil
	}
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return ConnectResult{}, fmt.Errorf("connect vm: %w", err)
	}
	return result.ConnectResult, nil
}

// Detect runs the backend's emulator detection strategies against a host
// install directory. An unrecognized directory is not an error; the result
// type is "Unknown".
func (c *Client) Detect(ctx context.Context, path string) (Detection, error) {
	var result struct {
		statusEnvelope
		Result Detection `json:"result"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"path": path}).
		SetResult(&result).
		Post("/api/detect")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return Detection{}, fmt.Errorf("detect emulator: %w", err)
	}
	return result.Result, nil
}

// Logs returns the last n lines of the backend's log file. n <= 0 leaves
// the backend's default tail length in effect.
func (c *Client) Logs(ctx context.Context, n int) ([]string, error) {
	var result struct {
		statusEnvelope
		Logs []string `json:"logs"`
	}
	req := c.http.R().SetContext(ctx).SetResult(&result)
	if n > 0 {
		req.SetQueryParam("n", strconv.Itoa(n))
	}
	resp, err := req.Get("/api/logs")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return nil, fmt.Errorf("backend logs: %w", err)
	}
	return result.Logs, nil
}

// Apps lists removable applications by category inside the mounted image
func (c *Client) Apps(ctx context.Context) (map[string][]App, error) {
	var result struct {
		statusEnvelope
		Apps map[string][]App `json:"apps"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get("/api/apps")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	return result.Apps, nil
}

// Delete removes paths inside the mounted image
func (c *Client) Delete(ctx context.Context, paths []string) (DeleteResult, error) {
	var result struct {
		statusEnvelope
		DeleteResult
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"paths": paths}).
		SetResult(&result).
		Post("/api/delete")
	if err := c.check(resp, err, result.statusEnvelope); err != nil {
		return DeleteResult{}, fmt.Errorf("delete apps: %w", err)
	}
	return result.DeleteResult, nil
}

// Disconnect unmounts the image and stops the VM
func (c *Client) Disconnect(ctx context.Context) error {
	var result statusEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Post("/api/disconnect")
	if err := c.check(resp, err, result); err != nil {
		return fmt.Errorf("disconnect vm: %w", err)
	}
	return nil
}

func (c *Client) check(resp *resty.Response, err error, envelope statusEnvelope) error {
	if err != nil {
		return err
	}
	if resp.IsError() || envelope.Status == "error" {
		if envelope.Message != "" {
			return fmt.Errorf("guest backend: %s", envelope.Message)
		}
		return fmt.Errorf("guest backend: HTTP %d", resp.StatusCode())
	}
	return nil
}
