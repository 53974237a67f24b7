/*
Package render drives the external rendering pipeline.

The markup document assembled for a challenge operation is handed to a
typesetting engine, the resulting PDF is rasterized at a high
resolution, and the image is downscaled to its final size. All three
steps are external tools; we invoke them synchronously, stream their
output through the tracer, and surface a non-zero exit status unchanged
to the caller. No stage is retried and no partial output is considered
valid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors
*/
package render

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core"
)

// tracer traces with key 'glyfi.render'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.render")
}

// Rasterization parameters. Rendering at a high resolution and
// downscaling afterwards gives much smoother output than rendering at
// the target resolution directly.
const (
	RenderDPI           = 700
	DownscalePercentage = 50
)

// ToolError reports an external pipeline tool which exited with a
// non-zero status. It carries the tool's raw exit status, which doubles
// as our own exit status: callers propagate it unchanged.
type ToolError struct {
	Tool   string
	Status int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Status)
}

// ErrorCode returns the tool's exit status.
func (e *ToolError) ErrorCode() int {
	return e.Status
}

// UserMessage returns a short message suited for display to a user.
func (e *ToolError) UserMessage() string {
	return fmt.Sprintf("%s exited with an error, exiting...", e.Tool)
}

var _ core.AppError = &ToolError{}

// Typeset compiles the markup document at texPath into a PDF next to
// it, using the engine configured under key 'xelatex'.
func Typeset(conf schuko.Configuration, texPath string) error {
	cmd := exec.Command(binary(conf, "xelatex", "xelatex"), "-interaction=nonstopmode", texPath)
	return run("LaTeX", cmd)
}

// Rasterize renders the single page of the PDF at pdfPath into
// outName + ".png" at RenderDPI, with vector anti-aliasing off to keep
// glyph edges crisp for the later downscale.
func Rasterize(conf schuko.Configuration, pdfPath, outName string) error {
	cmd := exec.Command(binary(conf, "pdftoppm", "pdftoppm"),
		"-png", "-singlefile", "-r", strconv.Itoa(RenderDPI), "-aaVector", "no",
		pdfPath, outName)
	return run("pdftoppm", cmd)
}

// Downscale resizes outName + ".png" in place to DownscalePercentage of
// its rendered size, using the tool configured under key 'magick'.
func Downscale(conf schuko.Configuration, outName string) error {
	png := outName + ".png"
	cmd := exec.Command(binary(conf, "magick", "convert"),
		png, "-resize", strconv.Itoa(DownscalePercentage)+"%", png)
	return run("imagemagick", cmd)
}

// binary looks up a tool override in the configuration, falling back to
// the given default command name.
func binary(conf schuko.Configuration, key, fallback string) string {
	if conf != nil {
		if p := conf.GetString(key); p != "" {
			return p
		}
	}
	return fallback
}

// run starts cmd, streams its standard output through the tracer and
// waits for it to finish. A non-zero exit status is returned as a
// ToolError named after the tool; failure to start the tool at all maps
// to ETOOL.
func run(tool string, cmd *exec.Cmd) error {
	cmd.Stderr = io.Discard
	out, err := cmd.StdoutPipe()
	if err != nil {
		return core.WrapError(err, core.ETOOL, "cannot connect to %s", tool)
	}
	tracer().Debugf("running %v", cmd.Args)
	if err := cmd.Start(); err != nil {
		return core.WrapError(err, core.ETOOL, "cannot run %s", tool)
	}
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		tracer().Debugf("%s", strings.TrimSpace(scanner.Text()))
	}
	if err := cmd.Wait(); err != nil {
		if xerr, ok := err.(*exec.ExitError); ok {
			return &ToolError{Tool: tool, Status: xerr.ExitCode()}
		}
		return core.WrapError(err, core.ETOOL, "%s failed", tool)
	}
	return nil
}
