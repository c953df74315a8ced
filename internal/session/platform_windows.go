//go:build windows

package session

// Not implemented on Windows: there is no ps/lsof and no /proc.
var platform *Detector
