package chart

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"

	"github.com/rotisserie/eris"
)

// Viewer displays a rendered chart to the user.
type Viewer interface {
	Open(ctx context.Context, path string) error
}

// SystemViewer hands the image to the desktop's default viewer.
type SystemViewer struct{}

// Open launches the platform opener for path and waits for it to return.
func (SystemViewer) Open(ctx context.Context, path string) error {
	name, args := viewerCommand(runtime.GOOS, path)
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return eris.Wrapf(err, "chart: open %s with %s: %s", path, name, stderr.String())
	}
	return nil
}

func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// NopViewer skips the display step.
type NopViewer struct{}

func (NopViewer) Open(context.Context, string) error { return nil }
