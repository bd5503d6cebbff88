// Package build provides version and build information for notify.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the multi-line version text printed by --version.
// Colors are dropped automatically when stdout is not a terminal.
func Info() string {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", cyan("notify version"), white(Version))
	fmt.Fprintf(&b, "%s %s\n", yellow("Built from commit:"), white(Commit))
	fmt.Fprintf(&b, "%s %s\n", yellow("Build date:"), white(BuildDate))
	fmt.Fprintf(&b, "%s %s\n", yellow("Go version:"), white(runtime.Version()))
	return b.String()
}
