// sig-gen: Emit a repeating test signal from an SX1302 board. Reuses the
// same bring-up/bring-down lifecycle as reg-download; the packet itself is
// parameter validation only, waveform synthesis happens on the chip.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tferrand/gocell/pkg/concentrator"
)

func main() {
	devicePath := flag.String("d", concentrator.DefaultSPIPath, "Path to the SPI device (ex: /dev/spidev0.0)")
	useUSB := flag.Bool("u", false, "Device path is a USB-CDC port (ex: /dev/ttyACM0)")
	clockSource := flag.Int("k", 0, "Concentrator clock source (Radio A or Radio B) [0..1]")
	modName := flag.String("m", "CW", "Modulation: CW (default), FSK or LORA")
	freqHz := flag.Uint("q", concentrator.DefaultTestFreqHz, "TX frequency in Hz")
	power := flag.Int("p", 14, "TX power in dBm")
	count := flag.Int("n", 1, "Number of transmissions")
	interval := flag.Duration("t", time.Second, "Delay between transmissions")
	resetScript := flag.String("r", concentrator.DefaultResetScript, "Path to the board reset script")
	simulate := flag.Bool("sim", false, "Use the built-in simulator instead of hardware")
	flag.Parse()

	if err := run(*devicePath, *useUSB, *clockSource, *modName, uint32(*freqHz), *power, *count, *interval, *resetScript, *simulate); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(devicePath string, useUSB bool, clockSource int, modName string, freqHz uint32, power, count int, interval time.Duration, resetScript string, simulate bool) error {
	modulation, err := concentrator.ParseModulation(modName)
	if err != nil {
		return err
	}
	if clockSource < 0 || clockSource > 1 {
		return fmt.Errorf("%w: got %d", concentrator.ErrBadClockSource, clockSource)
	}
	if count < 1 {
		return fmt.Errorf("transmission count must be at least 1, got %d", count)
	}

	pkt := concentrator.TXPacket{
		FreqHz:     freqHz,
		Modulation: modulation,
		PowerDBm:   int8(power),
	}
	if modulation != concentrator.ModulationCW {
		pkt.Payload = []byte("TEST")
	}
	if err := pkt.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		hal      concentrator.HAL
		resetter concentrator.BoardResetter
	)
	if simulate {
		hal = concentrator.NewSimulator()
		resetter = concentrator.NopResetter{}
	} else {
		var com concentrator.Com
		if useUSB {
			com, err = concentrator.OpenUSB(devicePath)
		} else {
			com, err = concentrator.OpenSPI(devicePath)
		}
		if err != nil {
			return err
		}
		defer com.Close()
		hal = concentrator.NewSX1302(com)
		resetter = concentrator.ScriptResetter{Path: resetScript}
	}

	session := concentrator.NewSession(hal, resetter)

	board := concentrator.BoardConf{
		LoRaWANPublic: true,
		ClockSource:   clockSource,
		DevicePath:    devicePath,
	}
	rf := [2]concentrator.RFConf{
		{Enable: true, FreqHz: freqHz, Type: concentrator.RadioTypeSX1250, TxEnable: true},
		{Enable: clockSource == 1, FreqHz: freqHz, Type: concentrator.RadioTypeSX1250},
	}
	if err := session.Configure(board, rf); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted before start: %w", err)
	}
	if err := session.Start(); err != nil {
		return err
	}

	runErr := transmit(ctx, session, pkt, count, interval)

	if err := session.Stop(); err != nil {
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", runErr)
		}
		return err
	}
	return runErr
}

func transmit(ctx context.Context, session *concentrator.Session, pkt concentrator.TXPacket, count int, interval time.Duration) error {
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("interrupted after %d transmissions: %w", i, err)
		}
		if err := session.Transmit(pkt); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "INFO: sent %s test signal %d/%d at %d Hz\n", pkt.Modulation, i+1, count, pkt.FreqHz)
		if i < count-1 {
			time.Sleep(interval)
		}
	}
	return nil
}
