// reg-download: Download all SX1302 registers described by an external
// catalog document and print them to stdout as CSV (default) or JSON,
// followed by a one-line read tally.
//
// The register list lives in a catalog file (sx1302_reglist.json by
// default), not in this binary: the catalog's order is the scan order and
// the report order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tferrand/gocell/pkg/catalog"
	"github.com/tferrand/gocell/pkg/concentrator"
	"github.com/tferrand/gocell/pkg/report"
	"github.com/tferrand/gocell/pkg/scan"
)

const defaultCatalogPath = "sx1302_reglist.json"

func main() {
	devicePath := flag.String("d", concentrator.DefaultSPIPath, "Path to the SPI device (ex: /dev/spidev0.0)")
	useUSB := flag.Bool("u", false, "Device path is a USB-CDC port (ex: /dev/ttyACM0)")
	clockSource := flag.Int("k", 0, "Concentrator clock source (Radio A or Radio B) [0..1]")
	formatName := flag.String("f", "CSV", "Format string: CSV (default) or JSON")
	catalogPath := flag.String("c", defaultCatalogPath, "Path to the register catalog document")
	resetScript := flag.String("r", concentrator.DefaultResetScript, "Path to the board reset script")
	simulate := flag.Bool("sim", false, "Use the built-in simulator instead of hardware")
	verbose := flag.Bool("v", false, "Log per-register read failures to stderr")
	flag.Parse()

	if err := run(*devicePath, *useUSB, *clockSource, *formatName, *catalogPath, *resetScript, *simulate, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(devicePath string, useUSB bool, clockSource int, formatName, catalogPath, resetScript string, simulate, verbose bool) error {
	// Configuration errors are reported before any hardware interaction.
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if clockSource < 0 || clockSource > 1 {
		return fmt.Errorf("%w: got %d", concentrator.ErrBadClockSource, clockSource)
	}

	descriptors, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	// Interrupts are observed between phases only; a signal never skips the
	// stop/reset phase once the concentrator has been started.
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
		// Chain 0 stays enabled for calibration even when chain 1 is the
		// clock source. Frequencies are dummies: nothing is demodulated.
		{Enable: true, FreqHz: concentrator.DefaultTestFreqHz, Type: concentrator.RadioTypeSX1250},
		{Enable: clockSource == 1, FreqHz: concentrator.DefaultTestFreqHz, Type: concentrator.RadioTypeSX1250},
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

	// From here on stop() must always be attempted, even on a fatal error.
	runErr := download(ctx, session, descriptors, format, verbose)

	if err := session.Stop(); err != nil {
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", runErr)
		}
		return err
	}
	return runErr
}

func download(ctx context.Context, session *concentrator.Session, descriptors []catalog.Descriptor, format report.Format, verbose bool) error {
	// Identity read is diagnostic only: report and carry on.
	if eui, err := session.EUI(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to get concentrator EUI: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "INFO: concentrator EUI: 0x%016X\n", eui)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted before scan: %w", err)
	}

	engine := scan.Engine{}
	if verbose {
		engine.DebugLog = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
		}
	}
	outcomes, summary := engine.Scan(descriptors, session)

	if err := report.Render(os.Stdout, outcomes, format); err != nil {
		return err
	}

	// The tally is the last line of a successful run.
	fmt.Println(summary)
	return nil
}
