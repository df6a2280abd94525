// Package remote provides an engine.Engine implementation backed by an HTTP
// engine-runner service. Each supported engine (axe, pa11y, wave, lighthouse)
// runs behind such a runner; the client routes the scan request through the
// job's assigned proxy.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
	"gridscan/pkg/proxypool"
	"gridscan/pkg/serrors"
)

// Client talks to one engine-runner over HTTP and fulfills the engine.Engine
// interface. It is safe for concurrent use; per-request transports carry the
// proxy assignment.
type Client struct {
	name    domain.EngineName
	baseURL string
}

// New constructs a Client for the engine-runner at baseURL serving the named
// engine.
func New(name domain.EngineName, baseURL string) *Client {
	return &Client{name: name, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Name implements engine.Engine.
func (c *Client) Name() domain.EngineName { return c.name }

// httpClient builds a client whose outbound traffic goes through proxy. An
// empty proxy address falls back to direct egress.
func httpClient(proxy proxypool.Proxy) (*http.Client, error) {
	if proxy.Address == "" {
		return http.DefaultClient, nil
	}

	proxyURL, err := url.Parse(proxy.Address)
	if err != nil {
		return nil, fmt.Errorf("could not parse proxy address: %w", err)
	}
	if proxy.Username != "" {
		proxyURL.User = url.UserPassword(proxy.Username, proxy.Password)
	}

	return &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
	}, nil
}

// Scan submits URL to the engine-runner and decodes its findings. The runner
// is expected to complete within the caller's context deadline.
func (c *Client) Scan(ctx context.Context, URL string, proxy proxypool.Proxy) (domain.EngineResult, error) {
	type scanReq struct {
		URL string `json:"url"`
	}
	bodyBytes, err := json.Marshal(scanReq{URL: URL})
	if err != nil {
		return domain.EngineResult{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/scan",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return domain.EngineResult{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client, err := httpClient(proxy)
	if err != nil {
		return domain.EngineResult{}, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return domain.EngineResult{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.EngineResult{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.EngineResult{},
			serrors.With(serrors.ErrScanFailed, "engine runner returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var scanResp struct {
		Violations []struct {
			RuleID      string   `json:"ruleId"`
			Description string   `json:"description"`
			Severity    string   `json:"severity"`
			Selectors   []string `json:"selectors"`
		} `json:"violations"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(b, &scanResp); err != nil {
		return domain.EngineResult{}, fmt.Errorf("could not decode response: %w", err)
	}

	out := domain.EngineResult{
		Engine:          c.name,
		Status:          domain.EngineStatusSuccess,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
		Confidence:      scanResp.Confidence,
	}
	for _, v := range scanResp.Violations {
		out.Violations = append(out.Violations, domain.Violation{
			RuleID:      v.RuleID,
			Description: v.Description,
			Severity:    v.Severity,
			Selectors:   v.Selectors,
		})
	}

	return out, nil
}

// Ensure Client conforms to the engine.Engine interface at compile time.
var _ engine.Engine = (*Client)(nil)
