package socket

import "context"

// QuotaResponse reports the API units remaining on the token.
type QuotaResponse struct {
	Quota int64 `json:"quota"`
}

// GetQuota returns the quota attached to the configured API token.
func (c *Client) GetQuota(ctx context.Context, opts *RequestOptions) (Result[QuotaResponse], error) {
	return getJSON[QuotaResponse](ctx, c, "/quota", opts)
}
