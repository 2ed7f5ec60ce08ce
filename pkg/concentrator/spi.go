package concentrator

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// spidev ioctl requests, built from the 'k' magic of linux/spi/spidev.h.
// x/sys/unix does not export these, so they are assembled here the same way
// the kernel header does.
const (
	spiIOCMagic = 0x6b

	spiIOCWrMode        = 1<<30 | 1<<16 | spiIOCMagic<<8 | 1 // _IOW('k', 1, __u8)
	spiIOCWrBitsPerWord = 1<<30 | 1<<16 | spiIOCMagic<<8 | 3 // _IOW('k', 3, __u8)
	spiIOCWrMaxSpeedHz  = 1<<30 | 4<<16 | spiIOCMagic<<8 | 4 // _IOW('k', 4, __u32)

	spiTransferSize = 32                                                  // sizeof(struct spi_ioc_transfer)
	spiIOCMessage1  = 1<<30 | spiTransferSize<<16 | spiIOCMagic<<8 | 0x00 // _IOW('k', 0, one transfer)
)

// SPI link parameters for the SX1302.
const (
	spiSpeedHz     = 2000000
	spiBitsPerWord = 8
	spiMode        = 0
)

// spiIOCTransfer mirrors struct spi_ioc_transfer.
type spiIOCTransfer struct {
	txBuf       uint64
	rxBuf       uint64
	length      uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	pad         uint8
}

// SPIDev is a Com over a Linux spidev character device.
type SPIDev struct {
	file *os.File
	path string
}

// OpenSPI opens and configures a spidev node for SX1302 transactions.
func OpenSPI(path string) (*SPIDev, error) {
	if path == "" {
		return nil, ErrBadDevicePath
	}
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadDevicePath, path, err)
	}

	dev := &SPIDev{file: file, path: path}
	mode := uint8(spiMode)
	if err := dev.ioctl(spiIOCWrMode, unsafe.Pointer(&mode)); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to set SPI mode on %s: %w", path, err)
	}
	bits := uint8(spiBitsPerWord)
	if err := dev.ioctl(spiIOCWrBitsPerWord, unsafe.Pointer(&bits)); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to set SPI word size on %s: %w", path, err)
	}
	speed := uint32(spiSpeedHz)
	if err := dev.ioctl(spiIOCWrMaxSpeedHz, unsafe.Pointer(&speed)); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to set SPI speed on %s: %w", path, err)
	}

	return dev, nil
}

// Transfer runs one full-duplex SPI transaction.
func (d *SPIDev) Transfer(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("transfer buffers must match: tx=%d rx=%d", len(tx), len(rx))
	}
	if len(tx) == 0 {
		return nil
	}

	transfer := spiIOCTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		rxBuf:       uint64(uintptr(unsafe.Pointer(&rx[0]))),
		length:      uint32(len(tx)),
		speedHz:     spiSpeedHz,
		bitsPerWord: spiBitsPerWord,
	}
	if err := d.ioctl(spiIOCMessage1, unsafe.Pointer(&transfer)); err != nil {
		return fmt.Errorf("SPI transfer failed on %s: %w", d.path, err)
	}
	return nil
}

// Close releases the spidev node.
func (d *SPIDev) Close() error {
	return d.file.Close()
}

func (d *SPIDev) ioctl(request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
