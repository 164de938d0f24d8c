package socket

import (
	"context"
	"net/url"
)

// PackageIssue is one security issue raised against a package version. Value
// schemas vary per issue type and are passed through opaquely.
type PackageIssue struct {
	Type     string         `json:"type"`
	Severity string         `json:"severity"`
	Category string         `json:"category"`
	Value    map[string]any `json:"value,omitempty"`
}

func npmPath(pkg, version, suffix string) string {
	return "/npm/" + url.PathEscape(pkg) + "/" + url.PathEscape(version) + "/" + suffix
}

// GetIssuesByNpmPackage lists the issues Socket raises for one npm package
// version.
func (c *Client) GetIssuesByNpmPackage(ctx context.Context, pkg, version string, opts *RequestOptions) (Result[[]PackageIssue], error) {
	return getJSON[[]PackageIssue](ctx, c, npmPath(pkg, version, "issues"), opts)
}

// GetScoreByNpmPackage returns the package's score card.
func (c *Client) GetScoreByNpmPackage(ctx context.Context, pkg, version string, opts *RequestOptions) (Result[map[string]any], error) {
	return getJSON[map[string]any](ctx, c, npmPath(pkg, version, "score"), opts)
}
