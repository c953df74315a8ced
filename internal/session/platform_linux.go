//go:build linux && !android

package session

var platform = NewDetector(NewPSLister(ExecRunner), NewProcResolver())
