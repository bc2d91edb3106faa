package waf

// Binding is one output row: the effective WAF binding of a load
// balancer's default scope (Route == "NA") or of a single route.
//
// Invariant: Mode is exactly "NA" if and only if Firewall is exactly
// "waf_disabled". A located firewall with no recognizable mode keeps its
// name and an empty Mode, so disabled and unclassifiable stay distinct.
type Binding struct {
	Namespace    string `json:"namespace"`
	LoadBalancer string `json:"lb_name"`
	Route        string `json:"route"`
	Firewall     string `json:"waf_name"`
	Mode         string `json:"waf_mode"`
}
