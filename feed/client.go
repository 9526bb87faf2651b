// Package feed talks to the external click-attribution report API.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/traffbase/clickmap/models"
)

// PageSize is the fixed page size used when draining the report feed
const PageSize = 5000

// reportTimezone is fixed by the upstream account configuration
const reportTimezone = "Europe/Kyiv"

// eventTimeLayout is the datetime format the feed reports rows in
const eventTimeLayout = "2006-01-02 15:04:05"

// Client drains the upstream report API page by page
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a feed client for the given report endpoint
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Result is the full set of rows retrieved for one [from, to] window
type Result struct {
	Rows  []models.RawClick
	Total int
}

// Page is one page of the upstream report
type Page struct {
	Rows  []models.RawClick
	Total int
}

type reportRange struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`
	Interval string `json:"interval"`
}

type reportFilter struct {
	Name       string `json:"name"`
	Operator   string `json:"operator"`
	Expression string `json:"expression"`
}

type reportSort struct {
	Name  string `json:"name"`
	Order string `json:"order"`
}

// reportRequest mirrors the upstream report query contract. Limit and offset
// are strings on the wire.
type reportRequest struct {
	Range   reportRange    `json:"range"`
	Limit   string         `json:"limit"`
	Offset  string         `json:"offset"`
	Columns []string       `json:"columns"`
	Filters []reportFilter `json:"filters"`
	Sort    []reportSort   `json:"sort"`
}

type reportRow struct {
	SubID2      string `json:"sub_id_2"`
	Source      string `json:"source"`
	Datetime    string `json:"datetime"`
	CountryFlag string `json:"country_flag"`
}

type reportResponse struct {
	Rows  []reportRow `json:"rows"`
	Total int         `json:"total"`
}

// FetchPage requests a single page of the report at the given offset
func (c *Client) FetchPage(ctx context.Context, from, to string, offset int) (*Page, error) {
	reqBody := reportRequest{
		Range: reportRange{
			From:     from,
			To:       to,
			Timezone: reportTimezone,
		},
		Limit:   fmt.Sprintf("%d", PageSize),
		Offset:  fmt.Sprintf("%d", offset),
		Columns: []string{"sub_id_2", "source", "datetime", "country_flag"},
		Filters: []reportFilter{
			{Name: "is_bot", Operator: "IS_FALSE", Expression: "null"},
			{Name: "source", Operator: "NOT_EQUAL", Expression: ""},
		},
		Sort: []reportSort{
			{Name: "sub_id_2", Order: "asc"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("report request failed: %d %s: %s", resp.StatusCode, resp.Status, string(body))
	}

	var decoded reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode report response: %w", err)
	}

	page := &Page{Total: decoded.Total}
	for _, row := range decoded.Rows {
		eventTime, err := parseEventTime(row.Datetime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row datetime %q: %w", row.Datetime, err)
		}
		page.Rows = append(page.Rows, models.RawClick{
			Source:     row.Source,
			SubID:      row.SubID2,
			CountryTag: row.CountryFlag,
			EventTime:  eventTime,
		})
	}

	return page, nil
}

// FetchAll drains the report for the window, accumulating every page into one
// batch. A short page, or reaching the total reported by the first page,
// ends the loop. Any failure aborts the whole fetch; there is no resumption
// checkpoint, so callers re-fetch the full window on retry.
func (c *Client) FetchAll(ctx context.Context, from, to string) (*Result, error) {
	var allRows []models.RawClick
	offset := 0
	total := -1

	for {
		page, err := c.FetchPage(ctx, from, to, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching offset %d: %w", offset, err)
		}

		if total < 0 {
			total = page.Total
		}

		if len(page.Rows) == 0 {
			break
		}

		allRows = append(allRows, page.Rows...)
		offset += PageSize

		if len(allRows) >= total || len(page.Rows) < PageSize {
			break
		}
	}

	// Upstream did not report a total; fall back to what we saw
	if total <= 0 {
		total = len(allRows)
	}

	return &Result{Rows: allRows, Total: total}, nil
}

func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(eventTimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
