package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestService_Ready(t *testing.T) {
	ok := NewService(stubChecker{name: "llm"})
	assert.NoError(t, ok.Ready(context.Background()))

	down := errors.New("connection refused")
	bad := NewService(stubChecker{name: "llm"}, stubChecker{name: "other", err: down})
	err := bad.Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "other")
}

func TestService_Report(t *testing.T) {
	svc := NewService(stubChecker{name: "a"}, stubChecker{name: "b", err: errors.New("timeout")})
	report, ok := svc.Report(context.Background())
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"a": "ok", "b": "timeout"}, report)
}
