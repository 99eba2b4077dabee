package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportErrorUnwraps(t *testing.T) {
	cause := errors.New("chrome exited")
	err := fmt.Errorf("service: %w", &ExportError{Stage: StageLaunch, Err: cause})

	var exp *ExportError
	assert.True(t, errors.As(err, &exp))
	assert.Equal(t, StageLaunch, exp.Stage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "launch")
}

func TestRenderErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := &RenderError{Template: "modern", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"modern"`)
}

func TestFetchStatusString(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "unreachable", Unreachable.String())
	assert.Equal(t, "unauthorized", Unauthorized.String())
	assert.Equal(t, "unknown", FetchStatus(99).String())
}
