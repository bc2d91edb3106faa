package main

import (
	"fmt"
	"runtime"

	"github.com/wafexport/wafexport/pkg/ui"
)

func runVersion() {
	fmt.Printf("waf-export v%s\n", ui.Version)
	fmt.Printf("  build date: %s\n", ui.BuildDate)
	fmt.Printf("  commit:     %s\n", ui.Commit)
	fmt.Printf("  go:         %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
