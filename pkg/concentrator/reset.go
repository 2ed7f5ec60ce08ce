package concentrator

import (
	"fmt"
	"os"
	"os/exec"
)

// Reset phases passed to the external reset process.
const (
	ResetStart = "start"
	ResetStop  = "stop"
)

// DefaultResetScript is the conventional board reset script shipped with
// CoreCell reference designs.
const DefaultResetScript = "./reset_lgw.sh"

// BoardResetter performs the physical board reset around concentrator start
// and stop. It is a boundary collaborator: its only failure signal is a
// non-zero exit, which the session treats as fatal.
type BoardResetter interface {
	Reset(phase string) error
}

// ScriptResetter runs an external reset script with a single start/stop
// argument, inheriting the parent's stdout/stderr.
type ScriptResetter struct {
	Path string
}

// Reset invokes the script for the given phase.
func (r ScriptResetter) Reset(phase string) error {
	cmd := exec.Command(r.Path, phase)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrResetScript, r.Path, phase, err)
	}
	return nil
}

// NopResetter satisfies BoardResetter for simulator runs, where there is no
// physical board to reset.
type NopResetter struct{}

// Reset does nothing.
func (NopResetter) Reset(phase string) error {
	return nil
}
