package concentrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModulation(t *testing.T) {
	tests := []struct {
		in   string
		want Modulation
		ok   bool
	}{
		{"CW", ModulationCW, true},
		{"cw", ModulationCW, true},
		{"FSK", ModulationFSK, true},
		{"LORA", ModulationLoRa, true},
		{"LoRa", ModulationLoRa, true},
		{"GFSK", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseModulation(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestTXPacketValidate(t *testing.T) {
	good := TXPacket{FreqHz: 868100000, Modulation: ModulationFSK, PowerDBm: 14, Payload: []byte{1, 2}}
	require.NoError(t, good.Validate())

	lowFreq := good
	lowFreq.FreqHz = 100000000
	assert.Error(t, lowFreq.Validate())

	hotPower := good
	hotPower.PowerDBm = 30
	assert.Error(t, hotPower.Validate())

	badMod := good
	badMod.Modulation = Modulation(7)
	assert.Error(t, badMod.Validate())

	cwWithPayload := TXPacket{FreqHz: 868100000, Modulation: ModulationCW, PowerDBm: 14, Payload: []byte{1}}
	assert.Error(t, cwWithPayload.Validate())

	cw := TXPacket{FreqHz: 868100000, Modulation: ModulationCW, PowerDBm: 14}
	assert.NoError(t, cw.Validate())
}
