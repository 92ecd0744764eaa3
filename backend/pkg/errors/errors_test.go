package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorType_WalksWrapChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewCompanyNotFound("Nonexistent Co"))

	assert.True(t, IsErrorType(err, ErrorTypeGraph))
	assert.False(t, IsErrorType(err, ErrorTypeRecords))
	assert.False(t, IsErrorType(nil, ErrorTypeGraph))
}

func TestIsErrorType_WrappedCause(t *testing.T) {
	cause := NewConfigMissingRequired("NEO4J_URI")
	err := NewExportFailed("connect", cause)

	assert.True(t, IsErrorType(err, ErrorTypeExport))
	assert.True(t, IsErrorType(err, ErrorTypeConfig))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewCompanyNotFound("A")))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", NewCompanyDataNotFound("B"))))
	assert.False(t, IsNotFound(NewChartRenderFailed("C", stderrors.New("boom"))))
}

func TestBaseError_Message(t *testing.T) {
	err := NewChartRenderFailed("Tech Innovators Inc", stderrors.New("encode"))

	assert.Equal(t, "[chart] failed to render chart for Tech Innovators Inc: encode", err.Error())
	assert.Equal(t, "encode", stderrors.Unwrap(err).Error())
}
