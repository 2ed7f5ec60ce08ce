package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tferrand/gocell/pkg/catalog"
	"github.com/tferrand/gocell/pkg/scan"
)

func sampleOutcomes() []scan.Outcome {
	return []scan.Outcome{
		{
			Descriptor: catalog.Descriptor{Index: 0, AddressGroup: "PAGE0", Name: "REG_A", BitOffset: 0, BitLength: 8},
			Value:      5,
			OK:         true,
		},
		{
			// Failed read: omitted from rendering, not a placeholder
			Descriptor: catalog.Descriptor{Index: 1, AddressGroup: "PAGE0", Name: "REG_B", BitOffset: 8, BitLength: 4},
		},
		{
			Descriptor: catalog.Descriptor{Index: 2, AddressGroup: "PAGE1", Name: "REG_C", BitOffset: 0, BitLength: 16},
			Value:      -42,
			OK:         true,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"csv", FormatCSV, true},
		{"CSV", FormatCSV, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"xml", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleOutcomes(), FormatCSV))

	want := "REG_A, 5, PAGE0, 0, 8\n" +
		"REG_C, -42, PAGE1, 0, 16\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "REG_B")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleOutcomes(), FormatJSON))

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, "REG_A", records[0]["name"])
	assert.Equal(t, float64(5), records[0]["value"])
	assert.Equal(t, "PAGE0", records[0]["address_group"])
	assert.Equal(t, float64(0), records[0]["bit_offset"])
	assert.Equal(t, float64(8), records[0]["bit_length"])

	assert.Equal(t, "REG_C", records[1]["name"])
	assert.Equal(t, float64(-42), records[1]["value"])

	for _, record := range records {
		assert.NotEqual(t, "REG_B", record["name"])
	}
}

// The set of (name, value) pairs must be identical across both encodings of
// the same outcome sequence, in the same order.
func TestRenderFormatSymmetry(t *testing.T) {
	outcomes := sampleOutcomes()

	var csvBuf bytes.Buffer
	require.NoError(t, Render(&csvBuf, outcomes, FormatCSV))
	var csvPairs [][2]string
	for _, line := range strings.Split(strings.TrimRight(csvBuf.String(), "\n"), "\n") {
		fields := strings.Split(line, ", ")
		require.Len(t, fields, 5)
		csvPairs = append(csvPairs, [2]string{fields[0], fields[1]})
	}

	var jsonBuf bytes.Buffer
	require.NoError(t, Render(&jsonBuf, outcomes, FormatJSON))
	var records []struct {
		Name  string `json:"name"`
		Value int32  `json:"value"`
	}
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &records))
	var jsonPairs [][2]string
	for _, record := range records {
		jsonPairs = append(jsonPairs, [2]string{record.Name, fmt.Sprintf("%d", record.Value)})
	}

	assert.Equal(t, csvPairs, jsonPairs)
}

func TestRenderEmptySequence(t *testing.T) {
	var csvBuf bytes.Buffer
	require.NoError(t, Render(&csvBuf, nil, FormatCSV))
	assert.Empty(t, csvBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, Render(&jsonBuf, nil, FormatJSON))
	assert.Equal(t, "[]\n", jsonBuf.String())
}

// failWriter fails after n successful writes.
type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("stream closed")
	}
	w.n--
	return len(p), nil
}

func TestRenderReportsWriteFailure(t *testing.T) {
	err := Render(&failWriter{n: 1}, sampleOutcomes(), FormatCSV)
	require.Error(t, err)
	assert.ErrorContains(t, err, "stream closed")
}
