/*
Package client is a small typed REST client for the metadata catalog.
Requests and responses go through the generic TypedGet and TypedPost
helpers so that callers never handle raw JSON. When the configuration
asks for it, transient failures are retried with exponential backoff.
*/
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"reflect"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/pkg/config"
)

type Token string

func (t Token) String() string {
	return string(t)
}

// APIError is returned for any non 2xx catalog response.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s - %s", e.Status, e.Body)
}

// NotFound reports whether the catalog answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Temporary reports whether the request may succeed when retried.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// IsNotFound reports whether err wraps a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}

type Client struct {
	HttpClient *http.Client
	BaseURL    *url.URL
	AuthToken  Token

	RetryMode    core.RetryMode
	RetryMaxTime time.Duration
}

func New(config *config.Config) (*Client, error) {
	if config.CatalogURL == "" {
		return nil, errors.New("catalog url is required")
	}

	baseURL, err := url.Parse(config.CatalogURL)
	if err != nil {
		return nil, core.ErrFailedToParseURL.WithArgs(config.CatalogURL, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q must use http or https", config.CatalogURL)
	}

	baseURL.Path = path.Join("/", baseURL.Path, core.CatalogAPIPath)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: config.InsecureSkipVerify,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}

	return &Client{
		HttpClient:   httpClient,
		BaseURL:      baseURL,
		AuthToken:    Token(config.CatalogToken),
		RetryMode:    config.RetryMode,
		RetryMaxTime: config.RetryMaxTime,
	}, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]any, result any) error {
	if c.RetryMode != core.Backoff {
		return c.doOnce(ctx, method, endpoint, params, result)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.RetryMaxTime

	operation := func() error {
		err := c.doOnce(ctx, method, endpoint, params, result)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, params map[string]any, result any) error {
	// Endpoints come escaped from core.PathBuilder; keep the escaping so
	// that a name holding a slash stays a single segment.
	reqURL := *c.BaseURL
	reqURL.RawPath = path.Join(c.BaseURL.EscapedPath(), endpoint)
	unescaped, err := url.PathUnescape(reqURL.RawPath)
	if err != nil {
		return core.ErrFailedToParseURL.WithArgs(endpoint, err)
	}
	reqURL.Path = unescaped

	var reqBody io.Reader
	if params != nil && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		jsonData, err := json.Marshal(params)
		if err != nil {
			return core.ErrFailedToMarshalParams.WithArgs(err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else if params != nil {
		q := reqURL.Query()
		for k, v := range params {
			q.Add(k, fmt.Sprintf("%v", v))
		}
		reqURL.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return core.ErrFailedToMakeRequest.WithArgs(err)
	}

	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken.String())
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return core.ErrFailedToDoRequest.WithArgs(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.ErrFailedToReadResponseBody.WithArgs(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(bodyBytes),
		}
	}

	if result != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return core.ErrFailedToUnmarshalResponse.WithArgs(err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, params, result)
}

func (c *Client) post(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodPost, endpoint, params, result)
}

func toParamsMap[P any](params P) (map[string]any, error) {
	var paramsMap map[string]any
	if reflect.ValueOf(params).IsZero() {
		return nil, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, core.ErrFailedToMarshalParams.WithArgs(err)
	}
	if err := json.Unmarshal(data, &paramsMap); err != nil {
		return nil, core.ErrFailedToMarshalParams.WithArgs(err)
	}
	return paramsMap, nil
}

func TypedGet[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.get(ctx, endpoint, paramsMap, result)
}

func TypedPost[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.post(ctx, endpoint, paramsMap, result)
}
