package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine/remote"
	"gridscan/pkg/proxypool"
	"gridscan/pkg/serrors"
)

func TestClient_Scan_success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/scan", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			URL string `json:"url"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "https://example.com/page", req.URL)

		//nolint: lll
		_, _ = w.Write([]byte(`{"confidence":0.92,"violations":[{"ruleId":"image-alt","description":"Images must have alternate text","severity":"error","selectors":["img.hero"]}]}`))
	}))
	defer srv.Close()

	c := remote.New(domain.EngineAxe, srv.URL)
	require.Equal(t, domain.EngineAxe, c.Name())

	res, err := c.Scan(context.Background(), "https://example.com/page", proxypool.Proxy{})
	require.NoError(t, err)
	require.Equal(t, domain.EngineAxe, res.Engine)
	require.Equal(t, domain.EngineStatusSuccess, res.Status)
	require.InDelta(t, 0.92, res.Confidence, 0.0001)
	require.Len(t, res.Violations, 1)
	require.Equal(t, "image-alt", res.Violations[0].RuleID)
	require.Equal(t, "error", res.Violations[0].Severity)
	require.Equal(t, []string{"img.hero"}, res.Violations[0].Selectors)
}

func TestClient_Scan_non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "browser crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := remote.New(domain.EnginePa11y, srv.URL)

	_, err := c.Scan(context.Background(), "https://example.com", proxypool.Proxy{})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrScanFailed)
	require.Contains(t, err.Error(), "browser crashed")
}

func TestClient_Scan_badProxyAddress(t *testing.T) {
	c := remote.New(domain.EngineWave, "http://runner.local")

	_, err := c.Scan(context.Background(), "https://example.com", proxypool.Proxy{Address: "://bad"})
	require.Error(t, err)
}

func TestClient_Scan_contextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := remote.New(domain.EngineLighthouse, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Scan(ctx, "https://example.com", proxypool.Proxy{})
	require.Error(t, err)
}
