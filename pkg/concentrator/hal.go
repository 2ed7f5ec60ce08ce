// Package concentrator manages the lifecycle of an SX1302 concentrator board
// and exposes the register read primitive the scan engine consumes. The
// hardware abstraction layer sits behind the HAL interface so sessions run
// the same way over SPI, over a USB-CDC bridge, or against the simulator.
package concentrator

import "fmt"

// RadioType identifies the radio variant populated on an RF chain.
type RadioType int

const (
	RadioTypeSX1250 RadioType = iota
	RadioTypeSX1255
	RadioTypeSX1257
)

// String returns the radio variant name
func (t RadioType) String() string {
	switch t {
	case RadioTypeSX1250:
		return "SX1250"
	case RadioTypeSX1255:
		return "SX1255"
	case RadioTypeSX1257:
		return "SX1257"
	}
	return fmt.Sprintf("Unknown (%d)", int(t))
}

// BoardConf holds board-level configuration applied during bring-up.
type BoardConf struct {
	LoRaWANPublic bool
	ClockSource   int // 0 = Radio A, 1 = Radio B
	FullDuplex    bool
	DevicePath    string
}

// RFConf holds per-chain radio configuration applied during bring-up.
type RFConf struct {
	Enable          bool
	FreqHz          uint32
	Type            RadioType
	TxEnable        bool
	SingleInputMode bool
}

// HAL abstracts the concentrator hardware layer. Implementations: SX1302
// (real hardware over a Com transport) and Simulator (in-memory).
type HAL interface {
	BoardSetConf(conf BoardConf) error
	RadioSetConf(chain int, conf RFConf) error
	Start() error
	Stop() error

	// RegRead returns the current value of the register identified by its
	// catalog index. Valid only between Start and Stop.
	RegRead(index int) (int32, error)

	// EUI reads the concentrator's unique identifier register.
	EUI() (uint64, error)

	// Send queues one test transmission. Used by the signal generation
	// utility, not by the register downloader.
	Send(pkt TXPacket) error
}
