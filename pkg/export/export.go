// Package export walks the selected namespaces and load balancers and
// flattens every resolved WAF binding into one ordered row set.
package export

import (
	"context"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/waf"
	"github.com/wafexport/wafexport/pkg/xc"
)

// API is the control-plane surface the exporter consumes. *xc.Client
// satisfies it; tests use fakes.
type API interface {
	ListNamespaces(ctx context.Context) ([]string, error)
	ListLoadBalancers(ctx context.Context, namespace string) ([]string, error)
	GetLoadBalancer(ctx context.Context, namespace, name string) (*xc.LoadBalancer, error)
	waf.FirewallGetter
}

// Progress is called after each load balancer is resolved. Used by the CLI
// for verbose output; nil disables it.
type Progress func(namespace, loadBalancer string, rows int)

// Exporter drives resolution across namespaces and load balancers. Rows
// come out in namespace enumeration order, then load balancer listing
// order, then the resolver's internal order; the output is a pure
// concatenation with no deduplication.
type Exporter struct {
	api      API
	resolver *waf.Resolver
	progress Progress
}

// New creates an exporter over the given API.
func New(api API, progress Progress) *Exporter {
	return &Exporter{
		api:      api,
		resolver: waf.NewResolver(api),
		progress: progress,
	}
}

// Export resolves every load balancer in the selected scope. The selector
// is a single namespace, or defaults.NamespaceAll to expand to every
// namespace visible to the caller before any load balancer work begins.
// Namespaces and load balancers yielding nothing contribute zero rows; any
// collaborator failure aborts the run.
func (e *Exporter) Export(ctx context.Context, selector string) ([]waf.Binding, error) {
	namespaces := []string{selector}
	if selector == defaults.NamespaceAll {
		var err error
		namespaces, err = e.api.ListNamespaces(ctx)
		if err != nil {
			return nil, err
		}
	}

	var rows []waf.Binding
	for _, ns := range namespaces {
		names, err := e.api.ListLoadBalancers(ctx, ns)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			lb, err := e.api.GetLoadBalancer(ctx, ns, name)
			if err != nil {
				return nil, err
			}
			lbRows, err := e.resolver.Resolve(ctx, lb)
			if err != nil {
				return nil, err
			}
			rows = append(rows, lbRows...)
			if e.progress != nil {
				e.progress(ns, name, len(lbRows))
			}
		}
	}
	return rows, nil
}
