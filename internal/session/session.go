package session

import (
	"encoding/json"
	"sort"
)

// TargetName is the exact command name that identifies a claude session.
const TargetName = "claude"

// Result is the outcome of one detection pass.
// ActivePaths is always empty when Supported is false.
type Result struct {
	Supported   bool
	ActivePaths map[string]struct{}
}

func emptyResult(supported bool) Result {
	return Result{Supported: supported, ActivePaths: make(map[string]struct{})}
}

// Has reports whether path has an active session.
func (r Result) Has(path string) bool {
	_, ok := r.ActivePaths[path]
	return ok
}

// Len returns the number of distinct active paths.
func (r Result) Len() int {
	return len(r.ActivePaths)
}

// Paths returns the active paths sorted.
func (r Result) Paths() []string {
	paths := make([]string, 0, len(r.ActivePaths))
	for p := range r.ActivePaths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

type resultJSON struct {
	Supported   bool     `json:"supported"`
	ActivePaths []string `json:"activePaths"`
}

// MarshalJSON encodes the result in the host's camelCase shape.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{Supported: r.Supported, ActivePaths: r.Paths()})
}

// UnmarshalJSON decodes the camelCase shape produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = emptyResult(raw.Supported)
	if !raw.Supported {
		return nil
	}
	for _, p := range raw.ActivePaths {
		r.ActivePaths[p] = struct{}{}
	}
	return nil
}

// Lister finds the pids of running target processes.
type Lister interface {
	ListPIDs() []uint32
}

// Resolver maps pids to their current working directories.
// Pids whose directory cannot be read are left out.
type Resolver interface {
	ResolveCwds(pids []uint32) []string
}

// Detector pairs a Lister with a Resolver. A nil Detector reports the
// platform as unsupported.
type Detector struct {
	lister   Lister
	resolver Resolver
}

// NewDetector returns a Detector using the given strategies.
func NewDetector(l Lister, r Resolver) *Detector {
	return &Detector{lister: l, resolver: r}
}

// Detect lists target processes and collects their working directories.
func (d *Detector) Detect() Result {
	if d == nil {
		return emptyResult(false)
	}
	res := emptyResult(true)
	pids := d.lister.ListPIDs()
	if len(pids) == 0 {
		return res
	}
	for _, cwd := range d.resolver.ResolveCwds(pids) {
		res.ActivePaths[cwd] = struct{}{}
	}
	return res
}

// Detect runs the detector compiled in for the current platform.
// It never fails; anything it cannot see is simply absent from the result.
func Detect() Result {
	return platform.Detect()
}

// Supported reports whether the current platform has a detection strategy.
func Supported() bool {
	return platform != nil
}
