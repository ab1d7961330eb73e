// Package client is a typed HTTP client for the goods service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"goods/internal/domain/models"
)

const DefaultTimeout = 5 * time.Second

// Client calls the goods service. Every call is bounded by HTTPClient's timeout and never retried.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, msg)
}

// ResponseInfo describes the raw response of the last call, for debugging.
type ResponseInfo struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// LockResult is the confirmation returned by POST /lock.
type LockResult struct {
	Message string            `json:"message"`
	ID      int64             `json:"id"`
	Status  models.GoodStatus `json:"status"`
}

// ListGoods fetches one page. An empty search is not sent.
func (c *Client) ListGoods(ctx context.Context, search string, limit, offset int) ([]models.Good, ResponseInfo, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/goods?"+q.Encode(), nil)
	if err != nil {
		return nil, ResponseInfo{}, err
	}

	info, err := c.do(req)
	if err != nil {
		return nil, info, err
	}

	goods := []models.Good{}
	if err := json.Unmarshal(info.Body, &goods); err != nil {
		return nil, info, fmt.Errorf("decoding goods: %w", err)
	}
	return goods, info, nil
}

// SetStatus asks the service to move good id to status.
func (c *Client) SetStatus(ctx context.Context, id int64, status models.GoodStatus) (LockResult, error) {
	payload, err := json.Marshal(map[string]any{"id": id, "status": status})
	if err != nil {
		return LockResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/lock", bytes.NewReader(payload))
	if err != nil {
		return LockResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	info, err := c.do(req)
	if err != nil {
		return LockResult{}, err
	}

	var res LockResult
	if err := json.Unmarshal(info.Body, &res); err != nil {
		return LockResult{}, fmt.Errorf("decoding lock response: %w", err)
	}
	return res, nil
}

func (c *Client) do(req *http.Request) (ResponseInfo, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ResponseInfo{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	info := ResponseInfo{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if err != nil {
		return info, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
			apiErr.Code = payload.Code
		}
		return info, apiErr
	}
	return info, nil
}
