//go:build !darwin && !windows && (!linux || android)

package session

var platform *Detector
