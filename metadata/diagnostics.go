package metadata

import (
	"log"

	"github.com/fatih/color"
)

// Diagnostics receives warning-level events from the type mapper. It is an
// injected capability so callers and tests can swap the sink.
type Diagnostics interface {
	// UnmappedType reports a source type string that has no canonical
	// counterpart. It carries the original, non-normalized string.
	UnmappedType(dataType string)
}

// LogDiagnostics writes events to the standard logger.
type LogDiagnostics struct{}

func (LogDiagnostics) UnmappedType(dataType string) {
	log.Printf("%s  Unknown data type: %s", color.YellowString("⚠️"), dataType)
}
