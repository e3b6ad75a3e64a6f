package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
)

// ConnectClient creates connectors through the Kafka Connect REST API of the
// cluster registered for the request's environment.
type ConnectClient struct {
	endpoints map[string]string
	client    *http.Client
}

func NewConnectClient(cfg config.ConnectConfig) *ConnectClient {
	return &ConnectClient{
		endpoints: cfg.Endpoints(),
		client:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *ConnectClient) CreateConnector(ctx context.Context, name, connectorConfig, environment string, tenantID int32) error {
	endpoint, ok := c.endpoints[environment]
	if !ok {
		return errs.New(fmt.Sprintf("no connect cluster registered for environment %q", environment))
	}

	var cfg map[string]any
	if err := json.Unmarshal([]byte(connectorConfig), &cfg); err != nil {
		return errs.Wrap(err, "parse connector config")
	}

	body, err := json.Marshal(map[string]any{
		"name":   name,
		"config": cfg,
	})
	if err != nil {
		return errs.Wrap(err, "encode connector payload")
	}

	op := func() error {
		return c.post(ctx, endpoint+"/connectors", body)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return errs.Wrap(err, "create connector")
	}
	return nil
}

func (c *ConnectClient) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("connect rest returned %d: %s", resp.StatusCode, detail)
		// Client errors other than conflict/rate-limit will not heal on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusConflict && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}
	return nil
}
