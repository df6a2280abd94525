package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gridscan/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestGetFallsBackToDefault(t *testing.T) {
	require.NotNil(t, logger.Get(context.Background()))
}

func TestWithLoggerOverridesDefault(t *testing.T) {
	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFieldsReturnsDerivedLogger(t *testing.T) {
	ctx := context.Background()
	derived := logger.WithFields(ctx, zap.String("jobID", "abc"))
	require.NotSame(t, logger.Get(ctx), logger.Get(derived))
}
