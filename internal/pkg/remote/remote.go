package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/metrics"
)

// Config for a remote service adapter
type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
	HTTPClient   *http.Client
}

// Client is the transport every adapter shares. Each call gets its own deadline
// of Timeout, so a remote that never answers surfaces as an error instead of a hang.
type Client struct {
	Name         string
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
	HTTPClient   *http.Client
}

func NewClient(name string, config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		Name:         name,
		BaseURL:      config.BaseURL,
		APIKey:       config.APIKey,
		Timeout:      config.Timeout,
		RateLimitRPS: config.RateLimitRPS,
		Limiter:      config.Limiter,
		HTTPClient:   httpClient,
	}
}

// DoJSON sends a request to endpoint and decodes the JSON response into out.
// body, when not nil, is sent JSON encoded. header values are added as is.
func (c *Client) DoJSON(ctx context.Context,
	method string,
	endpoint string,
	body interface{},
	header http.Header,
	out interface{},
) (err error) {
	startTime := time.Now()
	defer func() {
		c.observe(startTime, err)
	}()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	if err := c.allow(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", c.Name, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.Name, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", c.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s responded with %d", ErrUnexpectedStatus, c.Name, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", c.Name, err)
	}

	return nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.Limiter == nil || c.RateLimitRPS <= 0 {
		return nil
	}

	res, err := c.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", c.Name),
		redis_rate.PerSecond(c.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

func (c *Client) observe(startTime time.Time, err error) {
	metrics.RemoteCallDuration.WithLabelValues(c.Name).Observe(time.Since(startTime).Seconds())

	outcome := metrics.OutcomeSuccess
	switch {
	case errors.Is(err, ErrRateLimitExceeded):
		outcome = metrics.OutcomeRateLimited
	case err != nil:
		outcome = metrics.OutcomeError
	}

	metrics.RemoteCalls.WithLabelValues(c.Name, outcome).Inc()
}
