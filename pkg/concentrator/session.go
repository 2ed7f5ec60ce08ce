package concentrator

import "fmt"

// State tracks the session lifecycle position.
type State int

const (
	StateUninitialized State = iota
	StateConfigured
	StateRunning
	StateStopped
)

// String returns a human-readable name for the session state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateConfigured:
		return "Configured"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	}
	return "Unknown"
}

// Session drives the concentrator through its sequential lifecycle:
// Uninitialized -> Configured -> Running -> Stopped. A session is owned by
// one caller for its whole lifetime and is not safe for concurrent use.
// Every lifecycle transition failure is fatal to the run; only register
// reads are recoverable.
type Session struct {
	hal   HAL
	reset BoardResetter
	state State
}

// NewSession wraps a HAL and the external board reset collaborator. The
// resetter is folded into the session so callers see one error taxonomy
// instead of shelling out themselves.
func NewSession(hal HAL, reset BoardResetter) *Session {
	return &Session{hal: hal, reset: reset}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Configure applies board and per-chain radio configuration and moves the
// session to Configured. RF chain 0 must be enabled even when chain 1 is the
// clock source: the internal calibration depends on it.
func (s *Session) Configure(board BoardConf, rf [2]RFConf) error {
	if s.state != StateUninitialized {
		return fmt.Errorf("%w: configure in state %s", ErrInvalidState, s.state)
	}
	if !rf[0].Enable {
		return ErrChain0Disabled
	}

	if err := s.hal.BoardSetConf(board); err != nil {
		return fmt.Errorf("failed to configure board: %w", err)
	}
	for chain := range rf {
		if err := s.hal.RadioSetConf(chain, rf[chain]); err != nil {
			return fmt.Errorf("failed to configure rxrf %d: %w", chain, err)
		}
	}

	s.state = StateConfigured
	return nil
}

// Start resets the board through the external collaborator, then starts the
// concentrator. A reset failure aborts before the hardware start is tried.
func (s *Session) Start() error {
	if s.state != StateConfigured {
		return fmt.Errorf("%w: start in state %s", ErrInvalidState, s.state)
	}

	if err := s.reset.Reset(ResetStart); err != nil {
		return err
	}
	if err := s.hal.Start(); err != nil {
		return fmt.Errorf("failed to start the concentrator: %w", err)
	}

	s.state = StateRunning
	return nil
}

// ReadRegister returns the current value of the indexed register. Valid only
// while Running. Reads are independent: a failure does not disturb session
// state or later reads.
func (s *Session) ReadRegister(index int) (int32, error) {
	if s.state != StateRunning {
		return 0, fmt.Errorf("%w: register read in state %s", ErrInvalidState, s.state)
	}
	return s.hal.RegRead(index)
}

// EUI reads the concentrator identity register. Diagnostic only: callers
// report a failure and carry on.
func (s *Session) EUI() (uint64, error) {
	if s.state != StateRunning {
		return 0, fmt.Errorf("%w: EUI read in state %s", ErrInvalidState, s.state)
	}
	return s.hal.EUI()
}

// Transmit queues one test transmission. Valid only while Running.
func (s *Session) Transmit(pkt TXPacket) error {
	if s.state != StateRunning {
		return fmt.Errorf("%w: transmit in state %s", ErrInvalidState, s.state)
	}
	return s.hal.Send(pkt)
}

// Stop halts the concentrator and resets the board. A reset failure after a
// successful hardware stop leaves the board in an unknown state and must be
// treated as an unrecoverable environment error by the caller.
func (s *Session) Stop() error {
	if s.state != StateRunning {
		return fmt.Errorf("%w: stop in state %s", ErrInvalidState, s.state)
	}

	if err := s.hal.Stop(); err != nil {
		return fmt.Errorf("failed to stop the concentrator: %w", err)
	}
	s.state = StateStopped

	if err := s.reset.Reset(ResetStop); err != nil {
		return fmt.Errorf("board may be left in an unknown state: %w", err)
	}
	return nil
}
