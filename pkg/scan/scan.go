// Package scan walks a register catalog against a running hardware session,
// reading every register once in catalog order. Individual read failures are
// folded into the outcome sequence and never abort the walk: one unreadable
// register must not prevent discovering the values of all the others.
package scan

import (
	"fmt"

	"github.com/tferrand/gocell/pkg/catalog"
)

// RegisterReader is the single hardware operation the engine needs. It is
// satisfied by *concentrator.Session and by instrumented test mocks.
type RegisterReader interface {
	ReadRegister(index int) (int32, error)
}

// Outcome is the per-descriptor result of a scan attempt: a value, or an
// absence when the read failed.
type Outcome struct {
	Descriptor catalog.Descriptor
	Value      int32
	OK         bool
}

// Summary tallies a completed scan.
type Summary struct {
	Attempted int
	Succeeded int
}

// String renders the trailing human-readable tally line
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d Registers read", s.Succeeded, s.Attempted)
}

// Engine runs catalog scans. The zero value is ready to use.
type Engine struct {
	// DebugLog, when set, receives a line per failed read.
	DebugLog func(format string, args ...interface{})
}

func (e *Engine) debug(format string, args ...interface{}) {
	if e.DebugLog != nil {
		e.DebugLog(format, args...)
	}
}

// Scan visits every descriptor exactly once, in catalog order, and returns
// the full outcome sequence plus the tally. Attempted is incremented for
// every entry, Succeeded only for reads that returned a value.
func (e *Engine) Scan(descriptors []catalog.Descriptor, reader RegisterReader) ([]Outcome, Summary) {
	outcomes := make([]Outcome, 0, len(descriptors))
	var summary Summary

	for _, descriptor := range descriptors {
		summary.Attempted++

		value, err := reader.ReadRegister(descriptor.Index)
		if err != nil {
			e.debug("failed to read register %s (index %d): %v", descriptor.Name, descriptor.Index, err)
			outcomes = append(outcomes, Outcome{Descriptor: descriptor})
			continue
		}

		outcomes = append(outcomes, Outcome{Descriptor: descriptor, Value: value, OK: true})
		summary.Succeeded++
	}

	return outcomes, summary
}

// Run scans with a zero-valued Engine.
func Run(descriptors []catalog.Descriptor, reader RegisterReader) ([]Outcome, Summary) {
	var engine Engine
	return engine.Scan(descriptors, reader)
}
