package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LsofResolver resolves every pid with a single lsof call.
type LsofResolver struct {
	run Runner
}

func NewLsofResolver(run Runner) *LsofResolver {
	return &LsofResolver{run: run}
}

// ResolveCwds runs `lsof -a -d cwd -Fn -p pid1,pid2,...`. lsof exits
// non-zero if any pid is gone, so partial output is still parsed.
func (r *LsofResolver) ResolveCwds(pids []uint32) []string {
	if len(pids) == 0 {
		return nil
	}
	list := make([]string, len(pids))
	for i, pid := range pids {
		list[i] = strconv.FormatUint(uint64(pid), 10)
	}
	out := output(r.run, "lsof", "-a", "-d", "cwd", "-Fn", "-p", strings.Join(list, ","))
	return parseLsofCwds(out)
}

// parseLsofCwds picks the name field ("n<path>") out of lsof -F output.
// Process ("p") and descriptor ("f") lines are ignored.
func parseLsofCwds(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		path, ok := strings.CutPrefix(strings.TrimRight(line, "\r"), "n")
		if !ok || path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// ProcResolver reads /proc/<pid>/cwd for each pid.
type ProcResolver struct {
	root     string
	readlink func(string) (string, error)
}

func NewProcResolver() *ProcResolver {
	return &ProcResolver{root: "/proc", readlink: os.Readlink}
}

func (r *ProcResolver) ResolveCwds(pids []uint32) []string {
	var paths []string
	for _, pid := range pids {
		link := filepath.Join(r.root, strconv.FormatUint(uint64(pid), 10), "cwd")
		path, err := r.readlink(link)
		if err != nil || path == "" {
			slog.Debug("cwd unavailable", "pid", pid, "err", err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
