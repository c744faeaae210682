package roamterrain

import (
	"fmt"
	"os"
)

// debugf prints a trace line to stderr when Debug is set: a bool-gated
// fmt.Fprintf rather than a logging library, since this package only
// ever needs a handful of occasional trace lines around Init/Update.
func (e *Engine) debugf(format string, args ...any) {
	if !e.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[roamterrain] "+format+"\n", args...)
}
