package session

import (
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Runner runs an external command and returns its stdout.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec. Stdout is returned even when the
// command exits non-zero.
func ExecRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// output runs a command and folds any failure into "whatever stdout we got".
func output(run Runner, name string, args ...string) []byte {
	out, err := run(name, args...)
	if err != nil {
		slog.Debug("external command failed", "cmd", name, "err", err)
	}
	return out
}

// PSLister lists pids via `ps -eo pid,comm`.
type PSLister struct {
	run  Runner
	name string
}

// NewPSLister returns a lister matching TargetName.
func NewPSLister(run Runner) *PSLister {
	return &PSLister{run: run, name: TargetName}
}

func (l *PSLister) ListPIDs() []uint32 {
	return parsePIDs(output(l.run, "ps", "-eo", "pid,comm"), l.name)
}

// parsePIDs extracts pids from `ps -eo pid,comm` output whose command is
// exactly name. Header and malformed lines are skipped.
func parsePIDs(out []byte, name string) []uint32 {
	var pids []uint32
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[1] != name {
			continue
		}
		pid, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			continue
		}
		pids = append(pids, uint32(pid))
	}
	return pids
}
