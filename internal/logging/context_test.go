package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/lyqlplay/internal/logging"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := logging.NewWriter(&buf, "info")
		ctx := logging.WithLogger(context.Background(), logger)

		logging.FromContext(ctx).Info("reparsed")
		assert.Same(t, logger, logging.FromContext(ctx))
		assert.Contains(t, buf.String(), "reparsed")
	})
}
