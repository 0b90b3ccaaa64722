package chart

import (
	"fmt"
)

// RenderError reports a failure to build or persist the chart image.
type RenderError struct {
	Path string
	Op   string // "build", "encode", "write"
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
