package main

import (
	"fmt"

	"github.com/cobaltgit/fbscreenshot/internal/capture"
	"github.com/cobaltgit/fbscreenshot/internal/config"
	"github.com/cobaltgit/fbscreenshot/internal/imaging"
	"github.com/cobaltgit/fbscreenshot/internal/log"
	"github.com/cobaltgit/fbscreenshot/internal/pixfmt"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	input       string
	rotation    int
	bitDepth    uint32
	pixelFormat string
	width       uint32
	height      uint32
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "fbscreenshot [flags] output.png",
		Short: "Simple framebuffer-based screenshot tool",
		Long: `fbscreenshot captures a Linux framebuffer device, or a raw dump of one,
and saves it as a PNG file.

Devices (paths starting with /dev/fb) report their own resolution and pixel
layout. Raw dumps need --width, --height and --bit-depth, and 16-bit dumps
also need --pixel-format.

Environment variables:
  ` + config.LogLevelEnv + `=debug    Enable debug logging`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Debug = f.verbose
			config.FromEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, &f, args[0])
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("fbscreenshot %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit))

	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", capture.DefaultInput, "framebuffer device or raw dump to capture from")
	flags.IntVarP(&f.rotation, "rotation", "r", 0, "clockwise rotation angle in degrees (0, 90, 180 or 270)")
	flags.Uint32VarP(&f.bitDepth, "bit-depth", "b", 0, "bits per pixel (16, 24 or 32); required for raw dumps, ignored for devices")
	flags.StringVarP(&f.pixelFormat, "pixel-format", "f", "auto", "pixel format (rgb565, argb1555, rgb888, rgba8888); required for 16-bit raw dumps, ignored for devices")
	flags.Uint32VarP(&f.width, "width", "w", 0, "framebuffer width; required for raw dumps, ignored for devices")
	flags.Uint32VarP(&f.height, "height", "H", 0, "framebuffer height; required for raw dumps, ignored for devices")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "print debug output")

	return cmd
}

func runCapture(cmd *cobra.Command, f *rootFlags, output string) error {
	rotation, err := imaging.ParseRotation(f.rotation)
	if err != nil {
		return err
	}
	format, err := pixfmt.Parse(f.pixelFormat)
	if err != nil {
		return err
	}

	opts := capture.Options{
		Input:    f.input,
		Output:   output,
		Rotation: rotation,
		Raw: capture.RawParams{
			Width:    f.width,
			Height:   f.height,
			BitDepth: f.bitDepth,
			Format:   format,
		},
	}

	res, err := capture.Run(opts)
	if err != nil {
		return fmt.Errorf("fbscreenshot: failed saving screenshot to '%s': %w", output, err)
	}
	log.Debugf("%s %s: %dx%d %s -> %dx%d", res.Source.Kind, res.Source.Path,
		res.Geometry.Width, res.Geometry.Height, res.Format, res.Width, res.Height)

	fmt.Fprintf(cmd.OutOrStdout(), "fbscreenshot: saved screenshot to '%s'\n", output)
	return nil
}
