package concentrator

import (
	"fmt"
	"strings"
)

// Modulation selects the waveform of a test transmission.
type Modulation int

const (
	ModulationCW Modulation = iota
	ModulationFSK
	ModulationLoRa
)

// String returns the canonical modulation name
func (m Modulation) String() string {
	switch m {
	case ModulationCW:
		return "CW"
	case ModulationFSK:
		return "FSK"
	case ModulationLoRa:
		return "LORA"
	}
	return fmt.Sprintf("Unknown (%d)", int(m))
}

// ParseModulation maps a user-supplied modulation name, case-insensitively,
// to its Modulation value.
func ParseModulation(s string) (Modulation, error) {
	switch strings.ToUpper(s) {
	case "CW":
		return ModulationCW, nil
	case "FSK":
		return ModulationFSK, nil
	case "LORA":
		return ModulationLoRa, nil
	}
	return 0, fmt.Errorf("unknown modulation %q: must be CW, FSK or LORA", s)
}

// TX frequency and power bounds accepted by the test-signal path.
const (
	TxFreqMinHz = 430000000
	TxFreqMaxHz = 928000000
	TxPowerMin  = -9
	TxPowerMax  = 27
)

// TXPacket describes one test transmission. The packet carries parameters
// only; waveform synthesis happens on the chip.
type TXPacket struct {
	FreqHz     uint32
	Modulation Modulation
	PowerDBm   int8
	Payload    []byte
}

// Validate checks the packet parameters against hardware limits.
func (p TXPacket) Validate() error {
	switch p.Modulation {
	case ModulationCW, ModulationFSK, ModulationLoRa:
	default:
		return fmt.Errorf("invalid modulation: %s", p.Modulation)
	}
	if p.FreqHz < TxFreqMinHz || p.FreqHz > TxFreqMaxHz {
		return fmt.Errorf("TX frequency %d Hz out of range [%d..%d]", p.FreqHz, TxFreqMinHz, TxFreqMaxHz)
	}
	if int(p.PowerDBm) < TxPowerMin || int(p.PowerDBm) > TxPowerMax {
		return fmt.Errorf("TX power %d dBm out of range [%d..%d]", p.PowerDBm, TxPowerMin, TxPowerMax)
	}
	if p.Modulation == ModulationCW && len(p.Payload) != 0 {
		return fmt.Errorf("CW transmission carries no payload")
	}
	return nil
}
