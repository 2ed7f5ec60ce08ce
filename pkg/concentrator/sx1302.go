package concentrator

import (
	"encoding/binary"
	"fmt"
)

// SX1302 SPI framing: every transaction starts with the SPI mux target byte,
// then the 15-bit register address with the write flag in the MSB. Reads
// clock one dummy byte before data comes back.
const (
	spiMuxTargetSX1302 = 0x00
	spiWriteAccess     = 0x80

	regPageSelect = 0x5600
	regVersion    = 0x5607
	regGlobalEn   = 0x5605
	regEUIBase    = 0x5610

	regTxFreqBase   = 0x5210
	regTxTrigger    = 0x5200
	txTrigImmediate = 0x01

	sx1302Version = 0x10
)

// SX1302 drives a real concentrator chip over a Com transport. It validates
// configuration the way the vendor HAL does and serves table-driven register
// reads for the scan engine.
type SX1302 struct {
	com        Com
	board      BoardConf
	rf         [2]RFConf
	configured bool
	started    bool
	page       int // currently selected register page, -1 if unknown
}

// NewSX1302 wraps an open transport. The transport stays owned by the
// caller and is not closed by the HAL.
func NewSX1302(com Com) *SX1302 {
	return &SX1302{com: com, page: -1}
}

// BoardSetConf validates and stores board-level options.
func (h *SX1302) BoardSetConf(conf BoardConf) error {
	if conf.ClockSource != 0 && conf.ClockSource != 1 {
		return fmt.Errorf("%w: got %d", ErrBadClockSource, conf.ClockSource)
	}
	if conf.DevicePath == "" {
		return ErrBadDevicePath
	}
	h.board = conf
	h.configured = true
	return nil
}

// RadioSetConf validates and stores one RF chain's options.
func (h *SX1302) RadioSetConf(chain int, conf RFConf) error {
	if chain < 0 || chain > 1 {
		return fmt.Errorf("%w: got %d", ErrBadChain, chain)
	}
	switch conf.Type {
	case RadioTypeSX1250, RadioTypeSX1255, RadioTypeSX1257:
	default:
		return fmt.Errorf("%w: %s on chain %d", ErrBadRadioType, conf.Type, chain)
	}
	h.rf[chain] = conf
	return nil
}

// Start verifies the chip version and enables the concentrator core.
func (h *SX1302) Start() error {
	if !h.configured {
		return fmt.Errorf("%w: start before configuration", ErrInvalidState)
	}

	if err := h.selectPage(0); err != nil {
		return fmt.Errorf("failed to select register page: %w", err)
	}
	version, err := h.readByte(regVersion)
	if err != nil {
		return fmt.Errorf("failed to read chip version: %w", err)
	}
	if version != sx1302Version {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrVersionMismatch, version, sx1302Version)
	}

	if err := h.writeByte(regGlobalEn, 0x01); err != nil {
		return fmt.Errorf("failed to enable concentrator core: %w", err)
	}
	h.started = true
	return nil
}

// Stop disables the concentrator core.
func (h *SX1302) Stop() error {
	if !h.started {
		return fmt.Errorf("%w: stop before start", ErrInvalidState)
	}
	if err := h.writeByte(regGlobalEn, 0x00); err != nil {
		return fmt.Errorf("failed to disable concentrator core: %w", err)
	}
	h.started = false
	return nil
}

// RegRead reads one register by catalog index, masking and sign-extending
// the bit field the register occupies.
func (h *SX1302) RegRead(index int) (int32, error) {
	if !h.started {
		return 0, fmt.Errorf("%w: register read before start", ErrInvalidState)
	}
	field, ok := regTable[index]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRegister, index)
	}

	if err := h.selectPage(field.page); err != nil {
		return 0, fmt.Errorf("register %d: failed to select page %d: %w", index, field.page, err)
	}

	byteCount := (int(field.offset) + int(field.size) + 7) / 8
	data, err := h.readBurst(field.addr, byteCount)
	if err != nil {
		return 0, fmt.Errorf("register %d: %w", index, err)
	}

	var raw uint32
	for _, b := range data {
		raw = raw<<8 | uint32(b)
	}
	raw >>= uint(field.offset)
	mask := uint32(1)<<uint(field.size) - 1
	raw &= mask

	if field.signed && raw&(1<<uint(field.size-1)) != 0 {
		return int32(raw) - int32(1)<<uint(field.size), nil
	}
	return int32(raw), nil
}

// EUI reads the concentrator's 64-bit unique identifier.
func (h *SX1302) EUI() (uint64, error) {
	if !h.started {
		return 0, fmt.Errorf("%w: EUI read before start", ErrInvalidState)
	}
	if err := h.selectPage(0); err != nil {
		return 0, fmt.Errorf("failed to select register page: %w", err)
	}
	data, err := h.readBurst(regEUIBase, 8)
	if err != nil {
		return 0, fmt.Errorf("failed to read EUI: %w", err)
	}
	return binary.BigEndian.Uint64(data), nil
}

// Send programs the TX frequency and pulses the immediate trigger.
func (h *SX1302) Send(pkt TXPacket) error {
	if !h.started {
		return fmt.Errorf("%w: transmit before start", ErrInvalidState)
	}
	if err := pkt.Validate(); err != nil {
		return err
	}

	if err := h.selectPage(3); err != nil {
		return fmt.Errorf("failed to select TX page: %w", err)
	}
	freqWord := pkt.FreqHz / 61 // 61.035 Hz PLL step, truncated
	freq := []byte{byte(freqWord >> 16), byte(freqWord >> 8), byte(freqWord)}
	for i, b := range freq {
		if err := h.writeByte(regTxFreqBase+uint16(i), b); err != nil {
			return fmt.Errorf("failed to program TX frequency: %w", err)
		}
	}
	if err := h.writeByte(regTxTrigger, txTrigImmediate); err != nil {
		return fmt.Errorf("failed to trigger transmission: %w", err)
	}
	return nil
}

// selectPage switches the active register page if needed.
func (h *SX1302) selectPage(page uint8) error {
	if h.page == int(page) {
		return nil
	}
	if err := h.writeByte(regPageSelect, page); err != nil {
		return err
	}
	h.page = int(page)
	return nil
}

func (h *SX1302) writeByte(addr uint16, value byte) error {
	tx := []byte{spiMuxTargetSX1302, spiWriteAccess | byte(addr>>8)&0x7F, byte(addr), value}
	rx := make([]byte, len(tx))
	return h.com.Transfer(tx, rx)
}

func (h *SX1302) readByte(addr uint16) (byte, error) {
	data, err := h.readBurst(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// readBurst reads n consecutive bytes starting at addr. The reply shares the
// clock with the request: header, one dummy byte, then data.
func (h *SX1302) readBurst(addr uint16, n int) ([]byte, error) {
	tx := make([]byte, 4+n)
	tx[0] = spiMuxTargetSX1302
	tx[1] = byte(addr>>8) & 0x7F
	tx[2] = byte(addr)
	rx := make([]byte, len(tx))
	if err := h.com.Transfer(tx, rx); err != nil {
		return nil, err
	}
	return rx[4:], nil
}
