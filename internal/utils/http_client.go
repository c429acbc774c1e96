package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryWait    = 500 * time.Millisecond
	defaultRetryMaxWait = 3 * time.Second
)

// HTTPClientOptions configures NewHTTPClient. Zero values keep resty
// defaults, except RetryCount, where zero disables retries.
type HTTPClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	UserAgent  string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. Retries, when enabled, apply
// only to transport errors, 429 and 5xx answers.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New()

	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(defaultRetryWait).
			SetRetryMaxWaitTime(defaultRetryMaxWait).
			AddRetryCondition(isRetryable)
	}

	return &HTTPClient{Client: c}
}

func isRetryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
