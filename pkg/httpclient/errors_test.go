package httpclient

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{ErrProxyConnect, ErrDNS, ErrTLS}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v must not match %v", a, b)
			}
		}
	}
}

func TestClassifyDNS(t *testing.T) {
	err := Classify(&net.DNSError{Err: "no such host", Name: "acme.console.ves.volterra.io"})
	if !errors.Is(err, ErrDNS) {
		t.Errorf("err = %v, want ErrDNS", err)
	}
}

func TestClassifyTLS(t *testing.T) {
	err := Classify(&tls.CertificateVerificationError{Err: errors.New("x509: certificate expired")})
	if !errors.Is(err, ErrTLS) {
		t.Errorf("err = %v, want ErrTLS", err)
	}
}

func TestClassifyProxy(t *testing.T) {
	err := Classify(fmt.Errorf("proxyconnect tcp: dial tcp 127.0.0.1:8080: connection refused"))
	if !errors.Is(err, ErrProxyConnect) {
		t.Errorf("err = %v, want ErrProxyConnect", err)
	}
}

func TestClassifyPassThrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := Classify(plain); got != plain {
		t.Errorf("Classify(%v) = %v, must pass through", plain, got)
	}
	if Classify(nil) != nil {
		t.Error("Classify(nil) must be nil")
	}
}
