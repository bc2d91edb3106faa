// Package waf resolves the effective WAF binding for every route of an
// HTTP load balancer: explicit override, inherited default, or disabled,
// with shared-namespace fallback for firewall references.
package waf

import (
	"context"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/xc"
)

// Resolver turns one load balancer configuration into an ordered sequence
// of bindings: the default binding first, then one per route in stored
// order. It keeps no state across load balancers.
type Resolver struct {
	locator *Locator
}

// NewResolver creates a resolver backed by the given firewall getter.
func NewResolver(g FirewallGetter) *Resolver {
	return &Resolver{locator: NewLocator(g)}
}

// Resolve computes the bindings for lb. The default binding is computed
// once and routes without an override inherit it as a value copy; a
// reference that resolves nowhere degrades to waf_disabled rather than
// erroring. Only non-not-found collaborator failures abort.
func (r *Resolver) Resolve(ctx context.Context, lb *xc.LoadBalancer) ([]Binding, error) {
	ns := lb.Metadata.Namespace
	lbName := lb.Metadata.Name
	spec := lb.Spec

	// Default binding. Disabled marker and missing/empty reference both
	// short-circuit before any lookup.
	defFirewall := defaults.WAFDisabled
	defMode := defaults.NotApplicable
	if spec.DisableWAF == nil && spec.AppFirewall != nil && spec.AppFirewall.Name != "" {
		display, mode, err := r.resolveRef(ctx, ns, spec.AppFirewall.Name)
		if err != nil {
			return nil, err
		}
		if display != "" {
			defFirewall, defMode = display, mode
		}
	}

	rows := make([]Binding, 0, len(spec.Routes)+1)
	rows = append(rows, Binding{
		Namespace:    ns,
		LoadBalancer: lbName,
		Route:        defaults.NotApplicable,
		Firewall:     defFirewall,
		Mode:         defMode,
	})

	for _, route := range spec.Routes {
		routePath := defaults.NotApplicable
		var opts *xc.AdvancedOptions
		if sr := route.SimpleRoute; sr != nil {
			if s := sr.Path.String(); s != "" {
				routePath = s
			}
			opts = sr.AdvancedOptions
		}

		firewall, mode := defFirewall, defMode
		switch {
		case opts != nil && opts.DisableWAF != nil:
			firewall, mode = defaults.WAFDisabled, defaults.NotApplicable
		case opts != nil && opts.AppFirewall != nil && opts.AppFirewall.Name != "":
			display, m, err := r.resolveRef(ctx, ns, opts.AppFirewall.Name)
			if err != nil {
				return nil, err
			}
			if display == "" {
				// Unresolvable override reads the same as an explicit
				// disable.
				firewall, mode = defaults.WAFDisabled, defaults.NotApplicable
			} else {
				firewall, mode = display, m
			}
		}

		rows = append(rows, Binding{
			Namespace:    ns,
			LoadBalancer: lbName,
			Route:        routePath,
			Firewall:     firewall,
			Mode:         mode,
		})
	}

	return rows, nil
}

// resolveRef locates and classifies one firewall reference. It returns the
// display name (with the cosmetic shared suffix when the fallback scope
// supplied the object) and the mode string, or ("", "") when the object
// exists nowhere.
func (r *Resolver) resolveRef(ctx context.Context, requestingNS, name string) (string, string, error) {
	fw, foundIn, err := r.locator.Locate(ctx, requestingNS, name)
	if err != nil {
		return "", "", err
	}
	if fw == nil {
		return "", "", nil
	}
	display := name
	if foundIn == defaults.NamespaceShared && requestingNS != defaults.NamespaceShared {
		display += defaults.SharedSuffix
	}
	return display, string(Classify(fw)), nil
}
