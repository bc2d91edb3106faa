package xc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafexport/wafexport/pkg/retry"
)

// testClient builds a client against a test server with retries and rate
// limiting effectively disabled unless a test opts in.
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{
		APIURL:    server.URL,
		Token:     "test-token",
		RateLimit: -1,
		Retry:     retry.Config{MaxAttempts: 1},
	})
	return client, server
}

func TestClientSendsAuthHeader(t *testing.T) {
	var gotAuth, gotUA string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"items":[]}`))
	}))

	_, err := client.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "APIToken test-token", gotAuth)
	assert.Contains(t, gotUA, "waf-export/")
}

func TestListNamespaces(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/namespaces", r.URL.Path)
		w.Write([]byte(`{"items":[{"name":"ns1"},{"name":"ns2"}]}`))
	}))

	names, err := client.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1", "ns2"}, names)
}

func TestListLoadBalancersFiltersEmptyNames(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/namespaces/ns1/http_loadbalancers", r.URL.Path)
		w.Write([]byte(`{"items":[{"name":"lb1"},{"name":""},{"name":"lb2"}]}`))
	}))

	names, err := client.ListLoadBalancers(context.Background(), "ns1")
	require.NoError(t, err)
	assert.Equal(t, []string{"lb1", "lb2"}, names)
}

func TestGetLoadBalancerDecodesTree(t *testing.T) {
	body := `{
		"metadata": {"name": "lb1", "namespace": "ns1"},
		"spec": {
			"app_firewall": {"name": "fw1"},
			"routes": [
				{"simple_route": {
					"path": {"prefix": "/api"},
					"advanced_options": {"disable_waf": {}}
				}},
				{"redirect_route": {}}
			]
		}
	}`
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/namespaces/ns1/http_loadbalancers/lb1", r.URL.Path)
		w.Write([]byte(body))
	}))

	lb, err := client.GetLoadBalancer(context.Background(), "ns1", "lb1")
	require.NoError(t, err)
	assert.Equal(t, "lb1", lb.Metadata.Name)
	require.NotNil(t, lb.Spec.AppFirewall)
	assert.Equal(t, "fw1", lb.Spec.AppFirewall.Name)
	assert.Nil(t, lb.Spec.DisableWAF)

	require.Len(t, lb.Spec.Routes, 2)
	sr := lb.Spec.Routes[0].SimpleRoute
	require.NotNil(t, sr)
	assert.Equal(t, "prefix=/api", sr.Path.String())
	require.NotNil(t, sr.AdvancedOptions)
	assert.NotNil(t, sr.AdvancedOptions.DisableWAF)
	assert.Nil(t, lb.Spec.Routes[1].SimpleRoute)
}

func TestGetAppFirewallNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":5}`, http.StatusNotFound)
	}))

	_, err := client.GetAppFirewall(context.Background(), "ns1", "ghost")
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "404 must be distinguishable: %v", err)
}

func TestGetAppFirewallForbiddenIsNotNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	_, err := client.GetAppFirewall(context.Background(), "ns1", "fw1")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestGetAppFirewallModes(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"metadata":{"name":"fw1","namespace":"ns1"},"spec":{"monitoring":{}}}`))
	}))

	fw, err := client.GetAppFirewall(context.Background(), "ns1", "fw1")
	require.NoError(t, err)
	assert.NotNil(t, fw.Spec.Monitoring)
	assert.Nil(t, fw.Spec.Blocking)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try later", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"items":[{"name":"ns1"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIURL:    server.URL,
		Token:     "t",
		RateLimit: -1,
		Retry:     retry.Config{MaxAttempts: 3, InitDelay: 1, MaxDelay: 1, Strategy: retry.Constant},
	})

	names, err := client.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1"}, names)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Config{
		APIURL:    server.URL,
		Token:     "t",
		RateLimit: -1,
		Retry:     retry.Config{MaxAttempts: 3, InitDelay: 1, MaxDelay: 1, Strategy: retry.Constant},
	})

	_, err := client.ListNamespaces(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
