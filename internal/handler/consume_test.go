package handler_test

import (
	"testing"

	"github.com/openshelf/circulation/internal/handler"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// A consumer group runs Setup at the start of every session, so any rebalance
// or broker restart calls it again on the same handler instance.
func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()
	log := zap.NewNop()
	consumer := handler.NewConsumer(handler.LogEmailHook(log), log)

	for i := 0; i < 3; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, consumer.Setup(nil))
		})
		require.NoError(t, consumer.Cleanup(nil))
	}
}
