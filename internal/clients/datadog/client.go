package datadog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	datadogapi "github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	"checkout/internal/config"
	"checkout/internal/logging"
)

// Client ships log items to the Datadog Logs intake
type Client struct {
	config  config.DatadogConfig
	logsAPI *datadogV2.LogsApi
	authCtx context.Context
	logger  *logging.Logger
}

// NewClient creates a Datadog Logs client from configuration
func NewClient(cfg config.DatadogConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.datadoghq.com"
	}

	apiCfg := datadogapi.NewConfiguration()
	apiCfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	apiCfg.Servers = datadogapi.ServerConfigurations{{URL: baseURL}}
	apiCfg.OperationServers = map[string]datadogapi.ServerConfigurations{
		"LogsApi.SubmitLog": {{URL: baseURL}},
	}

	apiClient := datadogapi.NewAPIClient(apiCfg)

	authCtx := datadogapi.NewDefaultContext(context.Background())
	authCtx = context.WithValue(authCtx, datadogapi.ContextAPIKeys, map[string]datadogapi.APIKey{
		"apiKeyAuth": {Key: cfg.APIKey},
		"appKeyAuth": {Key: cfg.AppKey},
	})

	return &Client{
		config:  cfg,
		logsAPI: datadogV2.NewLogsApi(apiClient),
		authCtx: authCtx,
		logger:  logging.NewDefaultLogger("datadog"),
	}
}

// SubmitLogs sends items in one request. ctx bounds the request; the
// credentials come from the client.
func (c *Client) SubmitLogs(ctx context.Context, items []datadogV2.HTTPLogItem) error {
	if len(items) == 0 {
		return nil
	}

	reqCtx := c.authCtx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithDeadline(reqCtx, deadline)
		defer cancel()
	}

	_, httpResp, err := c.logsAPI.SubmitLog(reqCtx, items)
	if httpResp != nil && httpResp.Body != nil {
		defer func() { _ = httpResp.Body.Close() }()
	}
	if err != nil {
		return fmt.Errorf("submit %d log items: %w", len(items), err)
	}
	c.logger.Debug("Submitted %d log items", len(items))
	return nil
}
