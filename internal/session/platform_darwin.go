//go:build darwin

package session

// macOS has no /proc, so cwds come from one batched lsof call.
var platform = NewDetector(NewPSLister(ExecRunner), NewLsofResolver(ExecRunner))
