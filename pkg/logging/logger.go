package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the shared application logger. User-facing output goes to stdout;
// diagnostics go here, to stderr.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetVerbose lowers the log level so probe internals become visible.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
	}
}
