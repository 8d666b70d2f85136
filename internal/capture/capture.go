package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cobaltgit/fbscreenshot/internal/fb"
	"github.com/cobaltgit/fbscreenshot/internal/imaging"
	"github.com/cobaltgit/fbscreenshot/internal/log"
	"github.com/cobaltgit/fbscreenshot/internal/pixfmt"
)

// State is a step of a capture.
type State int

const (
	Opening State = iota
	ResolvingGeometry
	ResolvingFormat
	Reading
	Decoding
	Rotating
	Saving
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Opening:
		return "opening"
	case ResolvingGeometry:
		return "resolving geometry"
	case ResolvingFormat:
		return "resolving format"
	case Reading:
		return "reading"
	case Decoding:
		return "decoding"
	case Rotating:
		return "rotating"
	case Saving:
		return "saving"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options controls a capture.
type Options struct {
	Input    string           // device or raw dump path
	Output   string           // PNG path
	Rotation imaging.Rotation // clockwise
	Raw      RawParams        // required for raw dumps, ignored for devices
}

// Result describes a finished capture.
type Result struct {
	Source   Source
	Geometry Geometry
	Format   pixfmt.Format
	Rotation imaging.Rotation

	// Width and Height are the dimensions of the saved PNG, after rotation.
	Width  int
	Height int
}

// device is an open framebuffer device.
type device interface {
	io.ReadCloser
	ScreenInfoQuerier
}

// openDevice is replaced in tests.
var openDevice = func(path string) (device, error) {
	d, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

type runner struct {
	opts  Options
	state State
}

// Run performs one capture from opts.Input to opts.Output.
func Run(opts Options) (*Result, error) {
	r := &runner{opts: opts}
	return r.capture()
}

// capture runs every step and leaves r in Done or Failed.
func (r *runner) capture() (*Result, error) {
	res, err := r.run()
	if err != nil {
		log.Debugf("capture failed while %s: %v", r.state, err)
		r.enter(Failed)
		return nil, err
	}
	return res, nil
}

func (r *runner) enter(s State) {
	r.state = s
	log.Debugf("state: %s", s)
}

func (r *runner) run() (*Result, error) {
	opts := r.opts
	if !imaging.IsPNGPath(opts.Output) {
		return nil, fmt.Errorf("%w: %q", ErrOutputExtension, opts.Output)
	}

	src := DetectSource(opts.Input)
	r.enter(Opening)
	log.Infof("opening %s", src.Path)

	var (
		source io.Reader
		geom   Geometry
		layout ChannelLayout
	)
	switch src.Kind {
	case SourceDevice:
		dev, err := openDevice(src.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceOpen, err)
		}
		defer dev.Close()
		source = dev

		r.enter(ResolvingGeometry)
		geom, layout, err = DeviceGeometry(dev)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Path, err)
		}
		if opts.Raw != (RawParams{}) {
			log.Warning("width, height, bit depth and pixel format are ignored when capturing from a device")
		}

	case SourceRawFile:
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceOpen, err)
		}
		defer f.Close()
		source = f

		r.enter(ResolvingGeometry)
		geom, err = RawGeometry(opts.Raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Path, err)
		}
	}

	r.enter(ResolvingFormat)
	format, err := ResolveFormat(src.Kind, geom.BitsPerPixel, layout, opts.Raw.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	log.Infof("resolution: %dx%d, depth: %d", geom.Width, geom.Height, geom.BitsPerPixel)
	size, err := geom.BufferSize(format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	log.Debugf("stride: %d pixels (%d bytes), pixel format: %s", geom.StrideWidth, geom.RowBytes(format), format)

	r.enter(Reading)
	buf, err := readFrame(source, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}

	r.enter(Decoding)
	img, err := Assemble(geom, format, buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}

	r.enter(Rotating)
	log.Infof("rotation: %s", opts.Rotation)
	rotated, err := imaging.Rotate(img, opts.Rotation)
	if err != nil {
		return nil, err
	}

	r.enter(Saving)
	if err := imaging.Save(opts.Output, rotated); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if info, err := imaging.Describe(opts.Output); err == nil {
		log.Debugf("wrote %s: %dx%d %s, %d bytes", opts.Output, info.Width, info.Height, info.Format, info.FileSizeBytes)
	}

	r.enter(Done)
	b := rotated.Bounds()
	return &Result{
		Source:   src,
		Geometry: geom,
		Format:   format,
		Rotation: opts.Rotation,
		Width:    b.Dx(),
		Height:   b.Dy(),
	}, nil
}

// readFrame reads exactly size bytes from the start of src. Regular files
// are checked against size and read into one allocation. Other sources, such
// as pipes and devices, grow the buffer as data arrives.
func readFrame(src io.Reader, size int) ([]byte, error) {
	var buf bytes.Buffer
	if f, ok := src.(*os.File); ok {
		if st, err := f.Stat(); err == nil && st.Mode().IsRegular() {
			if st.Size() < int64(size) {
				return nil, fmt.Errorf("%w: file holds %d bytes, frame needs %d", ErrShortRead, st.Size(), size)
			}
			buf.Grow(size + bytes.MinRead)
		}
	}

	if n, err := io.CopyN(&buf, src, int64(size)); err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %w", ErrShortRead, n, size, err)
	}
	log.Debugf("read %d bytes", size)
	return buf.Bytes(), nil
}
