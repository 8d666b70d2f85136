package capture

import "strings"

// DevicePrefix is the path prefix that marks a framebuffer device.
const DevicePrefix = "/dev/fb"

// DefaultInput is the first framebuffer device.
const DefaultInput = "/dev/fb0"

// SourceKind tells devices, which describe themselves, from raw dumps, which
// need geometry supplied by the caller.
type SourceKind int

const (
	SourceDevice SourceKind = iota + 1
	SourceRawFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceDevice:
		return "device"
	case SourceRawFile:
		return "raw dump"
	}
	return "unknown source"
}

// Source is a capture input.
type Source struct {
	Path string
	Kind SourceKind
}

// DetectSource classifies path once, by its prefix.
func DetectSource(path string) Source {
	if strings.HasPrefix(path, DevicePrefix) {
		return Source{Path: path, Kind: SourceDevice}
	}
	return Source{Path: path, Kind: SourceRawFile}
}
