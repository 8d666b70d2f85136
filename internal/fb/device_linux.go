//go:build linux

package fb

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is an open framebuffer device. Reads return the raw pixel memory
// starting at offset zero.
type Device struct {
	fd   int
	file *os.File
}

// Open opens the framebuffer device at path read-only.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Device{fd: fd, file: os.NewFile(uintptr(fd), path)}, nil
}

// VarScreeninfo queries the variable screen information of the device.
func (d *Device) VarScreeninfo() (VarScreeninfo, error) {
	var vinfo VarScreeninfo
	_, _, eno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), FBIOGET_VSCREENINFO, uintptr(unsafe.Pointer(&vinfo)))
	if eno != 0 {
		return vinfo, fmt.Errorf("FBIOGET_VSCREENINFO: %w", eno)
	}
	return vinfo, nil
}

// Read implements io.Reader over the framebuffer memory.
func (d *Device) Read(p []byte) (int, error) {
	return d.file.Read(p)
}

// Close closes the device.
func (d *Device) Close() error {
	return d.file.Close()
}
