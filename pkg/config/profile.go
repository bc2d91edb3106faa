package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile mirrors the YAML profile file. Durations are strings so the file
// can say "30s" rather than nanosecond integers.
type Profile struct {
	Tenant    string  `yaml:"tenant"`
	Namespace string  `yaml:"namespace"`
	APIURL    string  `yaml:"api_url"`
	Timeout   string  `yaml:"timeout"`
	RateLimit float64 `yaml:"rate_limit"`
	Retries   int     `yaml:"retries"`
	Output    string  `yaml:"output"`
	Format    string  `yaml:"format"`
	Excel     bool    `yaml:"excel"`
	Insecure  bool    `yaml:"insecure"`
	Proxy     string  `yaml:"proxy"`
}

// ApplyProfile loads a YAML profile and fills config fields whose flags
// were not set explicitly on the command line. Flags always win.
func ApplyProfile(fs *flag.FlagSet, c *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("config: parse profile %s: %w", path, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if p.Tenant != "" && !set["tenant"] {
		c.Tenant = p.Tenant
	}
	if p.Namespace != "" && !set["namespace"] {
		c.Namespace = p.Namespace
	}
	if p.APIURL != "" && !set["api-url"] {
		c.APIURL = p.APIURL
	}
	if p.Timeout != "" && !set["timeout"] {
		d, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return fmt.Errorf("config: profile timeout: %w", err)
		}
		c.Timeout = d
	}
	if p.RateLimit != 0 && !set["rate"] {
		c.RateLimit = p.RateLimit
	}
	if p.Retries != 0 && !set["retries"] {
		c.Retries = p.Retries
	}
	if p.Output != "" && !set["o"] && !set["output"] {
		c.OutputFile = p.Output
	}
	if p.Format != "" && !set["format"] {
		c.Format = p.Format
	}
	if p.Excel && !set["excel"] {
		c.Excel = true
	}
	if p.Insecure && !set["insecure"] {
		c.Insecure = true
	}
	if p.Proxy != "" && !set["proxy"] {
		c.Proxy = p.Proxy
	}
	return nil
}
