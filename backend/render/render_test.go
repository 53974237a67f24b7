package render

import (
	"os/exec"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/sungodmoth/glyfi/core"
)

func TestToolError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.render")
	defer teardown()
	//
	err := &ToolError{Tool: "pdftoppm", Status: 137}
	assert.Equal(t, 137, core.Code(err), "tool status propagates unchanged")
	assert.Equal(t, "pdftoppm exited with an error, exiting...", core.UserMessage(err))
	assert.Contains(t, err.Error(), "137")
}

func TestBinaryOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.render")
	defer teardown()
	//
	conf := testconfig.Conf{"magick": "/opt/imagemagick/bin/magick"}
	assert.Equal(t, "/opt/imagemagick/bin/magick", binary(conf, "magick", "convert"))
	assert.Equal(t, "convert", binary(testconfig.Conf{}, "magick", "convert"))
	assert.Equal(t, "xelatex", binary(nil, "xelatex", "xelatex"))
}

func TestRunPropagatesExitStatus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.render")
	defer teardown()
	//
	err := run("sh", exec.Command("sh", "-c", "exit 3"))
	if assert.Error(t, err) {
		assert.Equal(t, 3, core.Code(err))
		toolErr, ok := err.(*ToolError)
		if assert.True(t, ok) {
			assert.Equal(t, "sh", toolErr.Tool)
		}
	}
}

func TestRunSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.render")
	defer teardown()
	//
	assert.NoError(t, run("sh", exec.Command("sh", "-c", "echo one; echo two")))
}

func TestRunMissingTool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.render")
	defer teardown()
	//
	err := run("missing", exec.Command("glyfi-no-such-tool"))
	assert.Error(t, err)
	assert.Equal(t, core.ETOOL, core.Code(err))
}
