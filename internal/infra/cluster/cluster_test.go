//go:build unit

package cluster_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra/cluster"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetResetExecutor(t *testing.T) {
	t.Run("unknown environment fails before dialing", func(t *testing.T) {
		exec := cluster.NewOffsetResetExecutor(config.KafkaConfig{
			ClusterBootstrap: "DEV=localhost:9092",
			DialTimeout:      time.Second,
			ClientID:         "test",
		})

		params := commands.OffsetResetParams{
			TopicName:     "payments.events",
			ConsumerGroup: "payments-cg",
			ResetType:     request.ResetToEarliest,
		}
		outcome, err := exec.Execute(context.Background(), params, "PRD", 101)
		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.Contains(t, err.Error(), `no cluster registered for environment "PRD"`)
	})
}

func TestConnectClient(t *testing.T) {
	t.Run("posts name and parsed config to the connect endpoint", func(t *testing.T) {
		gotCh := make(chan map[string]any, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/connectors", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			gotCh <- payload
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		client := cluster.NewConnectClient(config.ConnectConfig{
			RestEndpoints:  "DEV=" + srv.URL,
			RequestTimeout: 5 * time.Second,
		})

		err := client.CreateConnector(context.Background(), "payments-sink", `{"connector.class":"JdbcSink"}`, "DEV", 101)
		require.NoError(t, err)
		got := <-gotCh
		assert.Equal(t, "payments-sink", got["name"])
		cfg, ok := got["config"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "JdbcSink", cfg["connector.class"])
	})

	t.Run("unknown environment fails without a request", func(t *testing.T) {
		client := cluster.NewConnectClient(config.ConnectConfig{RequestTimeout: time.Second})
		err := client.CreateConnector(context.Background(), "payments-sink", `{}`, "DEV", 101)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no connect cluster registered for environment "DEV"`)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := cluster.NewConnectClient(config.ConnectConfig{
			RestEndpoints:  "DEV=" + srv.URL,
			RequestTimeout: 5 * time.Second,
		})

		err := client.CreateConnector(context.Background(), "payments-sink", `{}`, "DEV", 101)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connect rest returned 400")
		assert.Equal(t, int32(1), calls.Load())
	})
}
