package checkers

import (
	"context"
	"time"

	"github.com/artem13815/resumefill/pkg/llm"
)

// ModelChecker pings the remote model provider.
type ModelChecker struct {
	model   llm.DocumentModel
	timeout time.Duration
}

func NewModelChecker(model llm.DocumentModel, timeout time.Duration) *ModelChecker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &ModelChecker{model: model, timeout: timeout}
}

func (c *ModelChecker) Name() string { return "llm:" + c.model.Name() }

// Check succeeds without a network call for models that cannot be pinged.
func (c *ModelChecker) Check(ctx context.Context) error {
	p, ok := c.model.(llm.Pinger)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return p.Ping(ctx)
}
