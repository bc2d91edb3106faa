// Package config holds the export command configuration: defaults, flag
// registration, an optional YAML profile file, and validation.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/output"
)

// Config holds all export options.
type Config struct {
	// Target settings
	Tenant    string // Tenant name (used in the API URL)
	Namespace string // Namespace name, or defaults.NamespaceAll for all
	APIURL    string // Full API base URL; overrides the tenant-derived one
	Token     string // API token; read from defaults.TokenEnvVar when empty

	// Execution settings
	Timeout   time.Duration // Per-request timeout
	RateLimit float64       // Client-side requests per second
	Retries   int           // Retry attempts for transient failures

	// Output settings
	OutputFile string // Output path; "-" writes the report to stdout
	Format     string // csv, json, jsonl, table
	Excel      bool   // Add UTF-8 BOM to CSV for Excel
	NoSanitize bool   // Disable CSV formula sanitization

	// Presentation settings
	Verbose bool // Per-load-balancer progress lines
	Silent  bool // Suppress banner and status output
	NoColor bool // Disable colored output
	Debug   bool // Dump API requests/responses to stderr

	// Transport settings
	Insecure bool   // Skip TLS certificate verification
	Proxy    string // HTTP/HTTPS proxy URL
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Namespace:  defaults.NamespaceAll,
		Timeout:    defaults.TimeoutAPI,
		RateLimit:  defaults.RateLimitAPI,
		Retries:    defaults.RetryAPI,
		OutputFile: defaults.OutputFileDefault,
		Format:     defaults.OutputFormatDefault,
	}
}

// RegisterFlags binds the config fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Tenant, "tenant", c.Tenant, "Tenant name (used in the API URL)")
	fs.StringVar(&c.Namespace, "namespace", c.Namespace,
		fmt.Sprintf("Namespace name, or %q for all namespaces", defaults.NamespaceAll))
	fs.StringVar(&c.APIURL, "api-url", c.APIURL, "API base URL (overrides -tenant)")

	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Per-request timeout")
	fs.Float64Var(&c.RateLimit, "rate", c.RateLimit, "Client-side requests per second")
	fs.IntVar(&c.Retries, "retries", c.Retries, "Retry attempts for transient API failures")

	fs.StringVar(&c.OutputFile, "o", c.OutputFile, "Output file (\"-\" for stdout)")
	fs.StringVar(&c.OutputFile, "output", c.OutputFile, "Output file (\"-\" for stdout)")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: csv, json, jsonl, table")
	fs.BoolVar(&c.Excel, "excel", c.Excel, "Add UTF-8 BOM to CSV output for Excel")
	fs.BoolVar(&c.NoSanitize, "no-sanitize", c.NoSanitize, "Disable CSV formula sanitization")

	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Verbose output (per-load-balancer progress)")
	fs.BoolVar(&c.Silent, "silent", c.Silent, "Suppress banner and status output")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Print API requests/responses for debugging")

	fs.BoolVar(&c.Insecure, "insecure", c.Insecure, "Skip TLS certificate verification")
	fs.StringVar(&c.Proxy, "proxy", c.Proxy, "HTTP/HTTPS proxy URL")
}

// Validate fills derived fields and rejects unusable configurations.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		if c.Tenant == "" {
			return fmt.Errorf("config: -tenant (or -api-url) is required")
		}
		c.APIURL = defaults.APIURL(c.Tenant)
	}

	if c.Token == "" {
		c.Token = os.Getenv(defaults.TokenEnvVar)
	}
	if c.Token == "" {
		return fmt.Errorf("config: environment variable %s not set", defaults.TokenEnvVar)
	}

	switch c.Format {
	case output.FormatCSV, output.FormatJSON, output.FormatJSONL, output.FormatTable:
	default:
		return fmt.Errorf("config: unknown format %q (want csv, json, jsonl, or table)", c.Format)
	}

	if c.Namespace == "" {
		c.Namespace = defaults.NamespaceAll
	}
	return nil
}
