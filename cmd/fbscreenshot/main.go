// Command fbscreenshot saves the contents of a Linux framebuffer device, or
// of a raw framebuffer dump, as a PNG file.
//
// Examples:
//
//	# Capture /dev/fb0.
//	fbscreenshot shot.png
//
//	# Capture the second framebuffer, rotated a quarter turn clockwise.
//	fbscreenshot -i /dev/fb1 -r 90 shot.png
//
//	# Convert a raw 16-bit dump taken with `cat /dev/fb0 > fb.raw`.
//	fbscreenshot -i fb.raw -w 800 -H 480 -b 16 -f rgb565 shot.png
package main

import (
	"fmt"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
