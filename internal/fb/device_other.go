//go:build !linux

package fb

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Open on systems without Linux framebuffers.
var ErrUnsupported = errors.New("framebuffer devices are only supported on linux")

// Device is an open framebuffer device.
type Device struct{}

// Open always fails outside Linux.
func Open(path string) (*Device, error) {
	return nil, fmt.Errorf("open %s: %w", path, ErrUnsupported)
}

// VarScreeninfo always fails outside Linux.
func (d *Device) VarScreeninfo() (VarScreeninfo, error) {
	return VarScreeninfo{}, ErrUnsupported
}

// Read always fails outside Linux.
func (d *Device) Read(p []byte) (int, error) {
	return 0, ErrUnsupported
}

// Close is a no-op outside Linux.
func (d *Device) Close() error {
	return nil
}
