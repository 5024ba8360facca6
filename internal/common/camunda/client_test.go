// internal/common/camunda/client_test.go
package camunda

import (
	stderrors "errors"
	"testing"

	"scholarship-workers/internal/common/errors"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Retry Classification Tests
// ==========================

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"connection refused", stderrors.New("rpc error: connection refused"), true},
		{"connection reset", stderrors.New("connection reset by peer"), true},
		{"deadline exceeded", stderrors.New("context deadline exceeded"), true},
		{"unavailable", stderrors.New("rpc error: code = Unavailable"), true},
		{"broken pipe", stderrors.New("write: broken pipe"), true},
		{"not found", stderrors.New("process definition not found"), false},
		{"validation", stderrors.New("variable payload malformed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(tt.err))
		})
	}
}

// ==========================
// Error Mapping Tests
// ==========================

func TestMapZeebeError(t *testing.T) {
	c := &Client{config: &ClientConfig{RetryConfig: DefaultRetryConfig}}

	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
	}{
		{"unavailable broker", stderrors.New("rpc error: code = Unavailable"), "EXTERNAL_SERVICE_ERROR"},
		{"timeout", stderrors.New("context deadline exceeded"), "TIMEOUT_ERROR"},
		{"not found", stderrors.New("process definition not found"), "BUSINESS_RULE_VIOLATION"},
		{"already exists", stderrors.New("resource already exists"), "BUSINESS_RULE_VIOLATION"},
		{"unknown", stderrors.New("something else"), "EXTERNAL_SERVICE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := c.mapZeebeError(tt.err, "DeployProcess", 2)

			var stdErr *errors.StandardError
			assert.True(t, stderrors.As(mapped, &stdErr))
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Contains(t, stdErr.Message+stdErr.Details, "DeployProcess")
		})
	}
}
