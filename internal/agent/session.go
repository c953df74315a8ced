package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leo/claude-sessions/internal/session"
)

// Workspace is a project directory with at least one live claude session.
type Workspace struct {
	Path       string
	ShortPath  string
	GitBranch  string
	LastActive time.Time
}

// BuildWorkspaces turns a detection result into display rows, sorted by path
// (Result.Paths is already sorted).
func BuildWorkspaces(res session.Result, history map[string]time.Time) []Workspace {
	home, _ := os.UserHomeDir()
	var workspaces []Workspace
	for _, path := range res.Paths() {
		workspaces = append(workspaces, Workspace{
			Path:       path,
			ShortPath:  shortPath(path, home),
			GitBranch:  gitBranch(path),
			LastActive: history[path],
		})
	}
	return workspaces
}

func shortPath(path, home string) string {
	short := filepath.Base(path)
	if short == "." || short == "/" {
		short = path
		if home != "" && strings.HasPrefix(short, home) {
			short = "~" + strings.TrimPrefix(short, home)
		}
	}
	return short
}

// IsActive reports whether dir has a live session. dir is cleaned first so
// "/a/b/" and "/a/b" are the same project, then symlinks are resolved since
// the OS reports cwds by their real path (/tmp is /private/tmp on macOS).
func IsActive(res session.Result, dir string) bool {
	if dir == "" {
		return false
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	dir = filepath.Clean(dir)
	if res.Has(dir) {
		return true
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false
	}
	return res.Has(resolved)
}

// Load runs detect on its own goroutine and gives up when ctx is done.
// A detection that outlives ctx is reported as supported-but-empty so the
// badge simply stays off.
func Load(ctx context.Context, detect func() session.Result) session.Result {
	done := make(chan session.Result, 1)
	go func() {
		done <- detect()
	}()
	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		var res session.Result
		res.Supported = session.Supported()
		res.ActivePaths = make(map[string]struct{})
		return res
	}
}

// gitBranch returns the current git branch by reading .git/HEAD directly,
// avoiding a process spawn. Returns "" if not a git repo or on any error.
func gitBranch(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	ref := strings.TrimSpace(string(data))
	if branch, ok := strings.CutPrefix(ref, "ref: refs/heads/"); ok {
		return branch
	}
	if len(ref) >= 8 {
		return ref[:8]
	}
	return ref
}
