// Command waf-export exports the effective WAF binding of every HTTP load
// balancer (and every route within it) in an F5 Distributed Cloud tenant
// to a flat tabular report.
package main

import (
	"fmt"
	"os"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/ui"
)

func printUsage() {
	ui.PrintCompactBanner()
	fmt.Fprintln(os.Stderr, "Usage: waf-export <command> [options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  export     Export WAF bindings for HTTP load balancers")
	fmt.Fprintln(os.Stderr, "  version    Print version information")
	fmt.Fprintln(os.Stderr, "  help       Show this help")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  waf-export export -tenant acme")
	fmt.Fprintln(os.Stderr, "  waf-export export -tenant acme -namespace prod -o prod.csv")
	fmt.Fprintln(os.Stderr, "  waf-export export -tenant acme -format table -o -")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "The API token is read from the %s environment variable.\n", defaults.TokenEnvVar)
	fmt.Fprintln(os.Stderr, "Run 'waf-export export -h' for the full option list.")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUserError)
	}

	switch os.Args[1] {
	case "export":
		runExport(os.Args[2:])
	case "version", "-version", "--version":
		runVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		ui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
		printUsage()
		os.Exit(defaults.ExitUserError)
	}
}
