package socket

import (
	"context"
	"net/url"
)

// FullScan is one full-scan record for an organization.
type FullScan struct {
	ID             string `json:"id"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	OrganizationID string `json:"organization_id"`
	RepositoryID   string `json:"repository_id"`
	Branch         string `json:"branch"`
	CommitMessage  string `json:"commit_message"`
	CommitHash     string `json:"commit_hash"`
}

// FullScanListResponse is one page of full scans.
type FullScanListResponse struct {
	Results  []FullScan `json:"results"`
	NextPage int        `json:"nextPage"`
}

func fullScanPath(orgSlug, scanID string) string {
	p := "/orgs/" + url.PathEscape(orgSlug) + "/full-scans"
	if scanID != "" {
		p += "/" + url.PathEscape(scanID)
	}
	return p
}

// GetFullScanList pages through an organization's full scans. Pagination
// parameters go through the query normalizer.
func (c *Client) GetFullScanList(ctx context.Context, orgSlug string, params []Param, opts *RequestOptions) (Result[FullScanListResponse], error) {
	opts = withQuery(opts, params)
	return getJSON[FullScanListResponse](ctx, c, fullScanPath(orgSlug, ""), opts)
}

// GetFullScan fetches one full scan's metadata.
func (c *Client) GetFullScan(ctx context.Context, orgSlug, scanID string, opts *RequestOptions) (Result[FullScan], error) {
	return getJSON[FullScan](ctx, c, fullScanPath(orgSlug, scanID), opts)
}

// DeleteFullScan removes a full scan.
func (c *Client) DeleteFullScan(ctx context.Context, orgSlug, scanID string, opts *RequestOptions) (Result[map[string]any], error) {
	return deleteJSON[map[string]any](ctx, c, fullScanPath(orgSlug, scanID), opts)
}
