package errors

import (
	stderrors "errors"
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output, including the individual error strings
	// of a ValidationError on separate lines.
	Verbose bool
}

// HandleError logs an error to stderr.
func (h *LogHandler) HandleError(err error) {
	if err == nil {
		return
	}
	var verr *ValidationError
	if h.Verbose && stderrors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "[sdui error] %s [validation] %d error(s):\n", verr.Op, len(verr.Errors))
		for _, msg := range verr.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", msg)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "[sdui error] %v\n", err)
}
