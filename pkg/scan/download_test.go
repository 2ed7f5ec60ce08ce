package scan_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tferrand/gocell/pkg/catalog"
	"github.com/tferrand/gocell/pkg/concentrator"
	"github.com/tferrand/gocell/pkg/report"
	"github.com/tferrand/gocell/pkg/scan"
)

// Full pipeline: catalog -> session -> scan -> render, with one register
// failing its read.
func TestDownloadPipeline(t *testing.T) {
	descriptors := []catalog.Descriptor{
		{Index: 0, AddressGroup: "PAGE0", Name: "REG_A", BitOffset: 0, BitLength: 8},
		{Index: 1, AddressGroup: "PAGE0", Name: "REG_B", BitOffset: 8, BitLength: 4},
	}

	sim := concentrator.NewSimulator()
	sim.OnRegRead = func(index int) (int32, error) {
		if index == 1 {
			return 0, errors.New("read failed")
		}
		return 5, nil
	}

	session := concentrator.NewSession(sim, concentrator.NopResetter{})
	board := concentrator.BoardConf{ClockSource: 0, DevicePath: "/dev/spidev0.0"}
	rf := [2]concentrator.RFConf{{Enable: true, Type: concentrator.RadioTypeSX1250}, {}}
	require.NoError(t, session.Configure(board, rf))
	require.NoError(t, session.Start())

	outcomes, summary := scan.Run(descriptors, session)
	require.NoError(t, session.Stop())

	assert.Equal(t, []int{0, 1}, sim.ReadCalls)
	assert.Equal(t, scan.Summary{Attempted: 2, Succeeded: 1}, summary)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, outcomes, report.FormatCSV))
	assert.Equal(t, "REG_A, 5, PAGE0, 0, 8\n", buf.String())
	assert.Equal(t, "1/2 Registers read", summary.String())
}
