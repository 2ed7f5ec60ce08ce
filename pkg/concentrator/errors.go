package concentrator

import "errors"

// Session and HAL errors
var (
	// ErrInvalidState indicates an operation was attempted outside its lifecycle state
	ErrInvalidState = errors.New("operation not valid in current session state")

	// ErrChain0Disabled indicates RF chain 0 was left disabled; chain 0 must be
	// enabled for the internal calibration to succeed, whichever chain is the
	// clock source
	ErrChain0Disabled = errors.New("rf chain 0 must be enabled for calibration")

	// ErrBadClockSource indicates a clock source selector outside [0..1]
	ErrBadClockSource = errors.New("clock source must be 0 (Radio A) or 1 (Radio B)")

	// ErrBadRadioType indicates an unsupported radio variant
	ErrBadRadioType = errors.New("unsupported radio type")

	// ErrBadChain indicates an RF chain index outside [0..1]
	ErrBadChain = errors.New("rf chain index out of range")

	// ErrBadDevicePath indicates an empty or unusable device path
	ErrBadDevicePath = errors.New("invalid device path")

	// ErrUnknownRegister indicates a register index this HAL build has no mapping for
	ErrUnknownRegister = errors.New("unknown register index")

	// ErrResetScript indicates the external board reset process failed
	ErrResetScript = errors.New("board reset script failed")

	// ErrVersionMismatch indicates the chip did not report the expected version
	ErrVersionMismatch = errors.New("unexpected chip version")
)
