package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.InsecureSkipVerify {
		t.Error("InsecureSkipVerify must default to false")
	}
	if cfg.MaxConnsPerHost != 10 {
		t.Errorf("MaxConnsPerHost = %d, want 10", cfg.MaxConnsPerHost)
	}
}

func TestNewAppliesZeroValueDefaults(t *testing.T) {
	c := New(Config{})
	if c.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport is %T, want *http.Transport", c.Transport)
	}
	if tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("TLS verification must stay enabled by default")
	}
	if tr.MaxConnsPerHost != 10 {
		t.Errorf("MaxConnsPerHost = %d, want 10", tr.MaxConnsPerHost)
	}
}

func TestNewHonorsInsecureAndProxy(t *testing.T) {
	c := New(Config{InsecureSkipVerify: true, Proxy: "http://127.0.0.1:8080"})
	tr := c.Transport.(*http.Transport)
	if !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify not applied")
	}
	if tr.Proxy == nil {
		t.Error("proxy not applied")
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same client")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := WithTimeout(5 * time.Second)
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MaxIdleConns != DefaultConfig().MaxIdleConns {
		t.Error("other defaults must be preserved")
	}
}
