// Package report renders a scan's outcome sequence as CSV or JSON text, one
// record per successfully read register. Rendering is a pure function of the
// outcome sequence: no filtering beyond dropping failed reads, no
// reordering.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tferrand/gocell/pkg/scan"
)

// Format selects the report encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
)

// String returns the canonical format name
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatJSON:
		return "JSON"
	}
	return fmt.Sprintf("Unknown (%d)", int(f))
}

// ParseFormat maps a user-supplied format name to a Format. Only csv and
// json are accepted, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv", "CSV":
		return FormatCSV, nil
	case "json", "JSON":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown format %q: must be CSV (default) or JSON", s)
}

// record is one rendered register in JSON output.
type record struct {
	Name         string `json:"name"`
	Value        int32  `json:"value"`
	AddressGroup string `json:"address_group"`
	BitOffset    int    `json:"bit_offset"`
	BitLength    int    `json:"bit_length"`
}

// Render writes one record per successful outcome, in scan order.
func Render(w io.Writer, outcomes []scan.Outcome, format Format) error {
	switch format {
	case FormatCSV:
		return renderCSV(w, outcomes)
	case FormatJSON:
		return renderJSON(w, outcomes)
	}
	return fmt.Errorf("unknown format %d", int(format))
}

// renderCSV emits fixed-order fields with no header row and no quoting;
// names are simple tokens. Note the space after each comma: downstream
// tooling expects the loose form, not RFC 4180.
func renderCSV(w io.Writer, outcomes []scan.Outcome) error {
	for _, outcome := range outcomes {
		if !outcome.OK {
			continue
		}
		d := outcome.Descriptor
		_, err := fmt.Fprintf(w, "%s, %d, %s, %d, %d\n",
			d.Name, outcome.Value, d.AddressGroup, d.BitOffset, d.BitLength)
		if err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

func renderJSON(w io.Writer, outcomes []scan.Outcome) error {
	records := make([]record, 0, len(outcomes))
	for _, outcome := range outcomes {
		if !outcome.OK {
			continue
		}
		d := outcome.Descriptor
		records = append(records, record{
			Name:         d.Name,
			Value:        outcome.Value,
			AddressGroup: d.AddressGroup,
			BitOffset:    d.BitOffset,
			BitLength:    d.BitLength,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
