package process

// Notes:
// - Only a PID that cannot exist is used: PID 0 or a live PID would kill
//   real processes, including the test binary's own group.

import "testing"

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	// Must return quietly when there is nothing to kill.
	KillProcessGroup(999999999)
}
