package concentrator

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// USB-CDC link parameters. The bridge MCU on USB CoreCell boards mirrors the
// full SPI transaction frame back over the serial link.
const (
	usbBaudRate    = 115200
	usbReadTimeout = 500 * time.Millisecond
)

// USBPort is a Com over the USB-CDC serial bridge of a USB CoreCell board.
type USBPort struct {
	port *serial.Port
	path string
}

// OpenUSB opens the CDC serial port of a USB concentrator board.
func OpenUSB(path string) (*USBPort, error) {
	if path == "" {
		return nil, ErrBadDevicePath
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        path,
		Baud:        usbBaudRate,
		ReadTimeout: usbReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadDevicePath, path, err)
	}
	return &USBPort{port: port, path: path}, nil
}

// Transfer writes the transaction frame and reads the mirrored reply.
func (p *USBPort) Transfer(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("transfer buffers must match: tx=%d rx=%d", len(tx), len(rx))
	}
	if n, err := p.port.Write(tx); err != nil {
		return fmt.Errorf("write failed on %s: %w", p.path, err)
	} else if n != len(tx) {
		return fmt.Errorf("short write on %s: wrote %d of %d bytes", p.path, n, len(tx))
	}
	if _, err := io.ReadFull(p.port, rx); err != nil {
		return fmt.Errorf("read failed on %s: %w", p.path, err)
	}
	return nil
}

// Close closes the serial port.
func (p *USBPort) Close() error {
	return p.port.Close()
}
