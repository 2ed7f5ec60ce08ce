package concentrator

import "fmt"

// Simulator is an in-memory HAL for exercising the register download
// pipeline without hardware. It enforces the same lifecycle ordering as the
// real HAL and records every register read so tests can verify visit counts
// and ordering.
type Simulator struct {
	// Registers, when non-nil, is the register file served by RegRead;
	// indices outside it fail with ErrUnknownRegister. A nil map serves a
	// deterministic value derived from the index for any index.
	Registers map[int]int32

	// Identity is returned by EUI.
	Identity uint64

	// OnRegRead, when set, overrides the register file for each read.
	OnRegRead func(index int) (int32, error)

	// ReadCalls records the indices requested, in order.
	ReadCalls []int

	// Sent records every packet queued through Send.
	Sent []TXPacket

	board      BoardConf
	rf         [2]RFConf
	configured bool
	started    bool
}

// NewSimulator returns a simulator serving derived values for any index.
func NewSimulator() *Simulator {
	return &Simulator{Identity: 0x0016C001F00FCAFE}
}

// BoardSetConf validates options the way the real HAL does.
func (s *Simulator) BoardSetConf(conf BoardConf) error {
	if conf.ClockSource != 0 && conf.ClockSource != 1 {
		return fmt.Errorf("%w: got %d", ErrBadClockSource, conf.ClockSource)
	}
	s.board = conf
	s.configured = true
	return nil
}

// RadioSetConf validates and stores one RF chain's options.
func (s *Simulator) RadioSetConf(chain int, conf RFConf) error {
	if chain < 0 || chain > 1 {
		return fmt.Errorf("%w: got %d", ErrBadChain, chain)
	}
	s.rf[chain] = conf
	return nil
}

// Start requires a prior configuration.
func (s *Simulator) Start() error {
	if !s.configured {
		return fmt.Errorf("%w: start before configuration", ErrInvalidState)
	}
	s.started = true
	return nil
}

// Stop requires a prior start.
func (s *Simulator) Stop() error {
	if !s.started {
		return fmt.Errorf("%w: stop before start", ErrInvalidState)
	}
	s.started = false
	return nil
}

// RegRead records the call and serves the configured register file.
func (s *Simulator) RegRead(index int) (int32, error) {
	if !s.started {
		return 0, fmt.Errorf("%w: register read before start", ErrInvalidState)
	}
	s.ReadCalls = append(s.ReadCalls, index)

	if s.OnRegRead != nil {
		return s.OnRegRead(index)
	}
	if s.Registers != nil {
		value, ok := s.Registers[index]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownRegister, index)
		}
		return value, nil
	}
	return int32(index & 0xFF), nil
}

// EUI returns the configured identity.
func (s *Simulator) EUI() (uint64, error) {
	if !s.started {
		return 0, fmt.Errorf("%w: EUI read before start", ErrInvalidState)
	}
	return s.Identity, nil
}

// Send records the packet after validating it.
func (s *Simulator) Send(pkt TXPacket) error {
	if !s.started {
		return fmt.Errorf("%w: transmit before start", ErrInvalidState)
	}
	if err := pkt.Validate(); err != nil {
		return err
	}
	s.Sent = append(s.Sent, pkt)
	return nil
}
