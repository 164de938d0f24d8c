package socket

import (
	"context"
	"net/url"
)

// ReportSummary is one entry in the report list.
type ReportSummary struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

// GetReportList lists the reports accessible to the token.
func (c *Client) GetReportList(ctx context.Context, opts *RequestOptions) (Result[[]ReportSummary], error) {
	return getJSON[[]ReportSummary](ctx, c, "/report/list", opts)
}

// GetReport fetches a full project report. Report payloads are large and
// schema-versioned by the server, so they are passed through opaquely.
func (c *Client) GetReport(ctx context.Context, id string, opts *RequestOptions) (Result[map[string]any], error) {
	return getJSON[map[string]any](ctx, c, "/report/view/"+url.PathEscape(id), opts)
}

// GetReportSupportedFiles returns the manifest file patterns the report
// endpoint accepts.
func (c *Client) GetReportSupportedFiles(ctx context.Context, opts *RequestOptions) (Result[map[string]any], error) {
	return getJSON[map[string]any](ctx, c, "/report/supported", opts)
}
