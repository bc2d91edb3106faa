package waf

import (
	"context"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/xc"
)

// FirewallGetter fetches one app firewall object. A not-found condition
// must be reported via an error for which xc.IsNotFound is true; any other
// error is treated as fatal. *xc.Client satisfies this interface.
type FirewallGetter interface {
	GetAppFirewall(ctx context.Context, namespace, name string) (*xc.AppFirewall, error)
}

// Locator finds a firewall object for a reference, trying the requesting
// namespace first and the shared namespace second. A single fixed fallback
// level, not a scope chain.
type Locator struct {
	getter FirewallGetter
}

// NewLocator creates a locator backed by the given getter.
func NewLocator(g FirewallGetter) *Locator {
	return &Locator{getter: g}
}

// Locate resolves name relative to requestingNS. It returns the object and
// the namespace it was found in, or (nil, "") when the name is empty or the
// object exists in neither scope — a dangling reference is a valid
// configuration state, not an error. Every non-not-found failure
// propagates.
func (l *Locator) Locate(ctx context.Context, requestingNS, name string) (*xc.AppFirewall, string, error) {
	if name == "" {
		return nil, "", nil
	}

	fw, err := l.getter.GetAppFirewall(ctx, requestingNS, name)
	if err == nil {
		return fw, requestingNS, nil
	}
	if !xc.IsNotFound(err) {
		return nil, "", err
	}
	if requestingNS == defaults.NamespaceShared {
		return nil, "", nil
	}

	fw, err = l.getter.GetAppFirewall(ctx, defaults.NamespaceShared, name)
	if err == nil {
		return fw, defaults.NamespaceShared, nil
	}
	if !xc.IsNotFound(err) {
		return nil, "", err
	}
	return nil, "", nil
}
