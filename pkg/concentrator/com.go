package concentrator

// Default device paths and bring-up constants.
const (
	// DefaultSPIPath is the conventional spidev node for a CoreCell board.
	DefaultSPIPath = "/dev/spidev0.0"

	// DefaultTestFreqHz is the dummy RF chain frequency used during
	// bring-up when no real channel plan is needed.
	DefaultTestFreqHz = 868500000
)

// Com is the byte-level link between the HAL and the concentrator chip.
// Transfer performs one full-duplex transaction: tx is clocked out while rx,
// of the same length, is filled with the bytes clocked in.
type Com interface {
	Transfer(tx, rx []byte) error
	Close() error
}
