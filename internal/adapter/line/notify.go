package line

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
	"linenotify/internal/errors"
)

// DefaultEndpoint is the LINE Notify message API.
const DefaultEndpoint = "https://notify-api.line.me/api/notify"

const maxResponseBody = 64 * 1024

// Notify posts messages to LINE Notify.
type Notify struct {
	endpoint   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Notify)(nil)

// NewNotify creates a LINE Notify client. An empty endpoint selects
// DefaultEndpoint; a zero timeout leaves the HTTP client's default in place.
func NewNotify(endpoint string, timeout time.Duration, logger ports.Logger) *Notify {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	return &Notify{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Deliver sends message with a single POST. Failures are folded into the
// returned result.
func (n *Notify) Deliver(ctx context.Context, token, message string) model.DeliveryResult {
	result := model.DeliveryResult{ID: uuid.NewString()}
	start := time.Now()

	status, body, err := n.post(ctx, token, message)
	result.Duration = time.Since(start)
	result.StatusCode = status
	if err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrDelivery, err)
		result.ErrorMessage = err.Error()
		if n.logger != nil {
			n.logger.Debug(ctx, "line notify request failed", "delivery_id", result.ID, "status", status, "error", err)
		}
		return result
	}

	result.Succeeded = true
	result.ResponseBody = body
	return result
}

func (n *Notify) post(ctx context.Context, token, message string) (int, string, error) {
	form := url.Values{}
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}
	body := strings.TrimSpace(string(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, body, fmt.Errorf("line notify returned status %d: %s", resp.StatusCode, body)
	}

	return resp.StatusCode, body, nil
}
