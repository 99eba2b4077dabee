package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when a template key is absent from the
	// registry (or from the subset allowed for PDF export).
	ErrTemplateNotFound = errors.New("template not found")
	// ErrResumeNotFound is returned when no resume could be produced, neither
	// from the backend nor from fallback data.
	ErrResumeNotFound = errors.New("resume not found")
)

// RenderError reports a template that failed to execute against a resume.
// Adapter-produced resumes should never trigger it.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render template %q: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ExportStage names the step of a PDF export that failed.
type ExportStage string

const (
	StageLaunch  ExportStage = "launch"
	StageLoad    ExportStage = "load"
	StageCapture ExportStage = "capture"
	StageVerify  ExportStage = "verify"
)

// ExportError reports a failed HTML to PDF transcode. No partial output
// accompanies it.
type ExportError struct {
	Stage ExportStage
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export pdf (%s): %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
