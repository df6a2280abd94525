package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/serrors"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrComplianceDenied, "robots.txt disallow")
	require.ErrorIs(t, err, serrors.ErrComplianceDenied)
	require.NotErrorIs(t, err, serrors.ErrProxyUnavailable)
}

func TestErrorIsMatchesWrappedCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrScanFailed, cause, "all engines failed")
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, serrors.ErrScanFailed)
}

func TestErrorSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", serrors.KindOnly(serrors.ErrProxyUnavailable))
	require.ErrorIs(t, err, serrors.ErrProxyUnavailable)
}

func TestErrorString(t *testing.T) {
	require.Equal(t, "PROXY_UNAVAILABLE", serrors.KindOnly(serrors.ErrProxyUnavailable).Error())
	require.Equal(t, "no healthy proxies", serrors.With(serrors.ErrProxyUnavailable, "no healthy proxies").Error())

	cause := errors.New("boom")
	require.Equal(t, "scan: boom", serrors.Wrap(serrors.ErrScanFailed, cause, "scan").Error())
}

func TestKindAccessor(t *testing.T) {
	err := serrors.With(serrors.ErrTimeout, "deadline expired")
	require.Equal(t, serrors.ErrTimeout, err.Kind())
	require.Equal(t, "deadline expired", err.Message())
}
