package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wafexport/wafexport/pkg/cli"
	"github.com/wafexport/wafexport/pkg/config"
	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/export"
	"github.com/wafexport/wafexport/pkg/httpclient"
	"github.com/wafexport/wafexport/pkg/output"
	"github.com/wafexport/wafexport/pkg/retry"
	"github.com/wafexport/wafexport/pkg/ui"
	"github.com/wafexport/wafexport/pkg/xc"
)

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfg := config.Default()
	cfg.RegisterFlags(fs)
	profile := fs.String("config", "", "YAML profile file with defaults for these options")
	if err := fs.Parse(args); err != nil {
		os.Exit(defaults.ExitUserError)
	}

	if *profile != "" {
		if err := config.ApplyProfile(fs, cfg, *profile); err != nil {
			ui.PrintError(err.Error())
			os.Exit(defaults.ExitUserError)
		}
	}
	if err := cfg.Validate(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitUserError)
	}

	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor)

	ui.PrintCompactBanner()
	ui.PrintSection("HTTP Load Balancer WAF Export")
	ui.PrintConfigLine("API", cfg.APIURL)
	ui.PrintConfigLine("Namespace", describeNamespace(cfg.Namespace))
	ui.PrintConfigLine("Format", cfg.Format)
	ui.PrintConfigLine("Output", describeOutput(cfg.OutputFile))

	ctx, cancel := cli.SignalContext(10 * time.Second)
	defer cancel()

	client := xc.NewClient(xc.Config{
		APIURL: cfg.APIURL,
		Token:  cfg.Token,
		HTTPClient: httpclient.New(httpclient.Config{
			Timeout:            cfg.Timeout,
			InsecureSkipVerify: cfg.Insecure,
			Proxy:              cfg.Proxy,
		}),
		RateLimit: cfg.RateLimit,
		Retry: retry.Config{
			MaxAttempts: cfg.Retries,
			InitDelay:   1 * time.Second,
			MaxDelay:    15 * time.Second,
			Strategy:    retry.Exponential,
			Jitter:      true,
		},
		Debug: cfg.Debug,
	})

	var progress export.Progress
	if cfg.Verbose {
		progress = func(ns, lb string, rows int) {
			ui.PrintInfo(fmt.Sprintf("%s/%s: %d binding(s)", ns, lb, rows))
		}
	}

	rows, err := export.New(client, progress).Export(ctx, cfg.Namespace)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitExportError)
	}

	var out io.Writer = os.Stdout
	if cfg.OutputFile != "" && cfg.OutputFile != "-" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(defaults.ExitExportError)
		}
		out = f
	}

	w, err := output.NewWriter(cfg.Format, out, output.Options{
		CSV: output.CSVOptions{
			ExcelCompatible:  cfg.Excel,
			SanitizeFormulas: !cfg.NoSanitize,
		},
		Table: output.TableConfig{
			DisableUnicode: cfg.NoColor,
		},
	})
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitUserError)
	}

	for _, b := range rows {
		if err := w.WriteBinding(b); err != nil {
			ui.PrintError(err.Error())
			os.Exit(defaults.ExitExportError)
		}
	}
	if err := w.Close(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitExportError)
	}

	if len(rows) == 0 {
		ui.PrintWarning("No HTTP load balancer data found.")
		return
	}
	ui.PrintSuccess(fmt.Sprintf("%d row(s) written to %s", len(rows), describeOutput(cfg.OutputFile)))
}

func describeNamespace(ns string) string {
	if ns == defaults.NamespaceAll {
		return fmt.Sprintf("%s (all namespaces)", ns)
	}
	return ns
}

func describeOutput(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
