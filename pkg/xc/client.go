// Package xc is a read-only client for the slice of the F5 Distributed
// Cloud (XC) configuration API that WAF export needs: namespace and load
// balancer enumeration, load balancer config fetch, and app firewall fetch
// with a distinguishable not-found condition.
package xc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/httpclient"
	"github.com/wafexport/wafexport/pkg/jsonutil"
	"github.com/wafexport/wafexport/pkg/retry"
)

// maxResponseBytes caps how much of a response body is read. LB configs are
// well under 1 MiB; the cap guards against a misbehaving endpoint.
const maxResponseBytes = 8 << 20

// Config holds client configuration.
type Config struct {
	// APIURL is the API base, e.g. https://acme.console.ves.volterra.io/api.
	APIURL string

	// Token is the API token sent as "Authorization: APIToken <token>".
	Token string

	// HTTPClient overrides the transport. Defaults to httpclient.Default().
	HTTPClient *http.Client

	// RateLimit is the client-side request rate in req/s.
	// 0 uses defaults.RateLimitAPI; negative disables limiting.
	RateLimit float64

	// Retry controls transient-failure retries (429, 5xx, network errors).
	// Zero value uses retry.DefaultConfig().
	Retry retry.Config

	// Debug dumps every request and response body to DebugWriter.
	Debug bool

	// DebugWriter receives debug dumps. Defaults to os.Stderr.
	DebugWriter io.Writer
}

// Client calls the XC configuration API. It is safe for concurrent use.
type Client struct {
	apiURL  string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	retry   retry.Config
	debug   bool
	debugW  io.Writer
}

// NewClient creates a client for the given tenant API.
func NewClient(cfg Config) *Client {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = httpclient.Default()
	}

	rl := cfg.RateLimit
	if rl == 0 {
		rl = defaults.RateLimitAPI
	}
	limit := rate.Inf
	burst := 1
	if rl > 0 {
		limit = rate.Limit(rl)
		if b := int(rl); b > 1 {
			burst = b
		}
	}

	rc := cfg.Retry
	if rc.MaxAttempts == 0 {
		rc = retry.DefaultConfig()
	}

	dw := cfg.DebugWriter
	if dw == nil {
		dw = os.Stderr
	}

	return &Client{
		apiURL:  strings.TrimRight(cfg.APIURL, "/"),
		token:   cfg.Token,
		http:    httpc,
		limiter: rate.NewLimiter(limit, burst),
		retry:   rc,
		debug:   cfg.Debug,
		debugW:  dw,
	}
}

// ListNamespaces returns the names of all namespaces visible to the token.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	var list itemList
	if err := c.getJSON(ctx, "/web/namespaces", &list); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Name)
	}
	return names, nil
}

// ListLoadBalancers returns the names of the HTTP load balancers in a
// namespace. Items with an empty name are dropped here; the resolution
// core never sees them.
func (c *Client) ListLoadBalancers(ctx context.Context, namespace string) ([]string, error) {
	path := fmt.Sprintf("/config/namespaces/%s/http_loadbalancers", url.PathEscape(namespace))
	var list itemList
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		if item.Name == "" {
			continue
		}
		names = append(names, item.Name)
	}
	return names, nil
}

// GetLoadBalancer fetches one load balancer's full configuration tree.
func (c *Client) GetLoadBalancer(ctx context.Context, namespace, name string) (*LoadBalancer, error) {
	path := fmt.Sprintf("/config/namespaces/%s/http_loadbalancers/%s",
		url.PathEscape(namespace), url.PathEscape(name))
	var lb LoadBalancer
	if err := c.getJSON(ctx, path, &lb); err != nil {
		return nil, err
	}
	return &lb, nil
}

// GetAppFirewall fetches one app firewall object. A 404 returns an error
// for which IsNotFound reports true; every other failure is fatal to the
// caller.
func (c *Client) GetAppFirewall(ctx context.Context, namespace, name string) (*AppFirewall, error) {
	path := fmt.Sprintf("/config/namespaces/%s/app_firewalls/%s",
		url.PathEscape(namespace), url.PathEscape(name))
	var fw AppFirewall
	if err := c.getJSON(ctx, path, &fw); err != nil {
		return nil, err
	}
	return &fw, nil
}

// getJSON performs an authenticated GET and decodes the response body.
// Transient failures (network errors, 429, 5xx) are retried; all other
// non-2xx statuses stop retrying immediately.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	fullURL := c.apiURL + path
	var body []byte
	err := retry.Do(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return retry.Stop(err)
		}
		req.Header.Set("Authorization", "APIToken "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "waf-export/"+defaults.Version)

		resp, err := c.http.Do(req)
		if err != nil {
			return httpclient.Classify(err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return err
		}
		c.debugDump(http.MethodGet, fullURL, resp.StatusCode, b)

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body = b
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return &APIError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Body: trimBody(b)}
		default:
			return retry.Stop(&APIError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Body: trimBody(b)})
		}
	})
	if err != nil {
		return err
	}
	return jsonutil.Unmarshal(body, out)
}

// debugDump prints one request/response exchange, mirroring --debug.
func (c *Client) debugDump(method, url string, status int, body []byte) {
	if !c.debug {
		return
	}
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(c.debugW, "\n%s\nAPI Request: %s %s\nStatus: %d\nResponse:\n%s\n%s\n\n",
		rule, method, url, status, body, rule)
}

// trimBody keeps error messages readable when the API returns a page of
// HTML or a large error document.
func trimBody(b []byte) string {
	const max = 512
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
