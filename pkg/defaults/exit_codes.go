package defaults

// Exit codes for the CLI.
const (
	ExitSuccess     = 0 // Clean exit, export written
	ExitExportError = 1 // Export aborted (API or I/O failure)
	ExitUserError   = 2 // Invalid arguments or configuration
)
