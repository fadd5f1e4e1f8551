package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 30 * time.Second

// manages HTTP requests to the report REST API
type ReportClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new report REST client
func NewReportClient() *ReportClient {
	endpoint := os.Getenv("SEORADAR_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ReportClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// fetches the derived report table
func (c *ReportClient) FetchReport(ctx context.Context, sortMode string, excludeTopRank bool) (*ReportPayload, error) {
	params := url.Values{}
	params.Set("sort", sortMode)

	// the server already excludes double top-3 rows for rewrite ranking;
	// this extra toggle filters the secondary views the same way
	if excludeTopRank {
		params.Add("ge", "avg_position_7d:4")
	}

	reqURL := fmt.Sprintf("%s/api/v1/report?%s", c.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var payload ReportPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &payload, nil
}

// triggers a dataset refresh on the server
func (c *ReportClient) TriggerRefresh(ctx context.Context) (int, error) {
	reqURL := fmt.Sprintf("%s/api/v1/refresh", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return 0, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return 0, fmt.Errorf("refresh failed with status %d", resp.StatusCode)
	}

	var result struct {
		RowCount int `json:"row_count"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	return result.RowCount, nil
}

// returns a tea.Cmd that fetches the report
func (c *ReportClient) FetchCmd(sortMode string, excludeTopRank bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		payload, err := c.FetchReport(ctx, sortMode, excludeTopRank)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return ReportMsg{report: payload}
	}
}

// returns a tea.Cmd that triggers a refresh then refetches
func (c *ReportClient) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*requestTimeout)
		defer cancel()

		rows, err := c.TriggerRefresh(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return RefreshedMsg{rowCount: rows}
	}
}
