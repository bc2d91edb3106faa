// Package defaults provides canonical default values for the exporter.
// This is the single source of truth for sentinels and runtime defaults.
package defaults

import (
	"fmt"
	"time"
)

// Version is the current waf-export version.
const Version = "1.2.0"

// ============================================================================
// NAMESPACE SENTINELS
// ============================================================================

const (
	// NamespaceAll is the selector meaning "all namespaces visible to the
	// caller". It is expanded via enumeration and never passed to a
	// namespace-scoped config call.
	NamespaceAll = "system"

	// NamespaceShared is the fallback scope searched when a firewall
	// reference is not found in its originating namespace.
	NamespaceShared = "shared"
)

// ============================================================================
// OUTPUT SENTINELS
// ============================================================================

const (
	// WAFDisabled is the firewall-name cell for a binding with no
	// effective firewall.
	WAFDisabled = "waf_disabled"

	// NotApplicable is the sentinel for the default-binding route cell and
	// for the mode cell of a disabled binding.
	NotApplicable = "NA"

	// SharedSuffix is appended to a firewall name located in the shared
	// namespace. Display-only; never part of object identity.
	SharedSuffix = " (shared)"
)

// ============================================================================
// API SETTINGS
// ============================================================================

const (
	// TokenEnvVar is the environment variable holding the API token.
	TokenEnvVar = "F5_XC_API_TOKEN"

	// APIURLTemplate builds the tenant console API base URL.
	APIURLTemplate = "https://%s.console.ves.volterra.io/api"

	// TimeoutAPI is the per-request timeout for control-plane calls.
	TimeoutAPI = 30 * time.Second

	// RateLimitAPI is the default client-side request rate (req/s).
	RateLimitAPI = 20

	// RetryAPI is the default retry attempt count for transient failures.
	RetryAPI = 3
)

// APIURL returns the console API base URL for a tenant.
func APIURL(tenant string) string {
	return fmt.Sprintf(APIURLTemplate, tenant)
}

// ============================================================================
// OUTPUT SETTINGS
// ============================================================================

const (
	// OutputFileDefault is the default CSV output path.
	OutputFileDefault = "f5_http_lb_waf_export.csv"

	// OutputFormatDefault is the default report format.
	OutputFormatDefault = "csv"
)
