package main

import (
	"github.com/pkg/profile"
)

// ProfileStart writes a cpu profile into dir until the returned
// function is called.
func ProfileStart(dir string) func() {
	return profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(dir),
		profile.NoShutdownHook,
		profile.Quiet,
	).Stop
}
