package xc

// Wire types for the slice of the XC configuration API this tool reads.
// Only the fields the WAF resolution consumes are modelled; unknown fields
// are ignored on decode.

// Empty marks presence of an XC oneof key whose value carries no data
// (e.g. "disable_waf": {}). A non-nil pointer means the key was present.
type Empty struct{}

// Metadata identifies a configuration object within a namespace.
type Metadata struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// ObjectRef is a reference to another configuration object. The name is
// resolved relative to the requesting namespace, falling back to shared.
type ObjectRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
	Tenant    string `json:"tenant,omitempty"`
}

// LoadBalancer is an HTTP load balancer configuration tree.
type LoadBalancer struct {
	Metadata Metadata         `json:"metadata"`
	Spec     LoadBalancerSpec `json:"spec"`
}

// LoadBalancerSpec holds the default WAF binding and the ordered routes.
type LoadBalancerSpec struct {
	Domains     []string   `json:"domains,omitempty"`
	DisableWAF  *Empty     `json:"disable_waf,omitempty"`
	AppFirewall *ObjectRef `json:"app_firewall,omitempty"`
	Routes      []Route    `json:"routes,omitempty"`
}

// Route is one entry of a load balancer's route list. Non-simple route
// kinds (redirect, direct response) decode with a nil SimpleRoute and
// inherit the load balancer's default binding.
type Route struct {
	SimpleRoute *SimpleRoute `json:"simple_route,omitempty"`
}

// SimpleRoute is a path-matching route that may override the WAF binding.
type SimpleRoute struct {
	HTTPMethod      string           `json:"http_method,omitempty"`
	Path            PathMatch        `json:"path,omitempty"`
	AdvancedOptions *AdvancedOptions `json:"advanced_options,omitempty"`
}

// AdvancedOptions carries the per-route WAF override knobs.
type AdvancedOptions struct {
	DisableWAF  *Empty     `json:"disable_waf,omitempty"`
	AppFirewall *ObjectRef `json:"app_firewall,omitempty"`
}

// AppFirewall is a named WAF policy object.
type AppFirewall struct {
	Metadata Metadata        `json:"metadata"`
	Spec     AppFirewallSpec `json:"spec"`
}

// AppFirewallSpec carries the enforcement-mode oneof. The two keys are
// mutually exclusive in the source system.
type AppFirewallSpec struct {
	Monitoring *Empty `json:"monitoring,omitempty"`
	Blocking   *Empty `json:"blocking,omitempty"`
}

// itemList is the envelope of the list endpoints.
type itemList struct {
	Items []Metadata `json:"items"`
}
