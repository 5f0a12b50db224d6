package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/labelkit/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext without logger falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil stores default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("WithFields adds custom fields", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithFields(ctx, map[string]any{
			"matches": 2,
			"labels":  []string{"a", "B"},
		})

		logging.FromContext(ctx).Info().Msg("fields")
		tl.AssertContains(t, `"matches":2`)
		tl.AssertContains(t, `"labels":["a","B"]`)
	})

	t.Run("WithError", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)

		assert.Equal(t, ctx, logging.WithError(ctx, nil))

		ctx = logging.WithError(ctx, errors.New("boom"))
		logging.FromContext(ctx).Info().Msg("failed")
		tl.AssertContains(t, `"error":"boom"`)
	})
}
