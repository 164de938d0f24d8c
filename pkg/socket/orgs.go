package socket

import (
	"context"
	"net/url"
)

// Organization is one organization visible to the token.
type Organization struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Plan  string `json:"plan"`
}

// OrganizationsResponse maps organization IDs to their summaries.
type OrganizationsResponse struct {
	Organizations map[string]Organization `json:"organizations"`
}

// GetOrganizations lists the organizations the API token can act on.
func (c *Client) GetOrganizations(ctx context.Context, opts *RequestOptions) (Result[OrganizationsResponse], error) {
	return getJSON[OrganizationsResponse](ctx, c, "/organizations", opts)
}

// GetOrgSecurityPolicy returns the organization's issue policy. The payload
// schema is owned by the server; it is passed through opaquely.
func (c *Client) GetOrgSecurityPolicy(ctx context.Context, orgSlug string, opts *RequestOptions) (Result[map[string]any], error) {
	return getJSON[map[string]any](ctx, c, "/orgs/"+url.PathEscape(orgSlug)+"/settings/security-policy", opts)
}
