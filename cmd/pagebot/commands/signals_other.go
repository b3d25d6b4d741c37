//go:build !linux && !darwin
// +build !linux,!darwin

package commands

import "os"

var shutdownSignals = []os.Signal{os.Interrupt}
