package socket

import (
	"context"
	"net/url"
)

// Repo is a repository registered with an organization.
type Repo struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
	Archived      bool   `json:"archived"`
	CreatedAt     string `json:"created_at"`
}

// RepoListResponse is one page of repositories.
type RepoListResponse struct {
	Results  []Repo `json:"results"`
	NextPage int    `json:"nextPage"`
}

// RepoParams is the mutable subset of repository settings for create/update.
type RepoParams struct {
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Archived      *bool  `json:"archived,omitempty"`
}

func repoPath(orgSlug, repoSlug string) string {
	p := "/orgs/" + url.PathEscape(orgSlug) + "/repos"
	if repoSlug != "" {
		p += "/" + url.PathEscape(repoSlug)
	}
	return p
}

// GetRepoList pages through an organization's repositories. Pagination and
// filter parameters (perPage, defaultBranch, ...) go through the query
// normalizer, so callers may use the SDK's camelCase names.
func (c *Client) GetRepoList(ctx context.Context, orgSlug string, params []Param, opts *RequestOptions) (Result[RepoListResponse], error) {
	opts = withQuery(opts, params)
	return getJSON[RepoListResponse](ctx, c, repoPath(orgSlug, ""), opts)
}

// GetRepo fetches one repository by slug.
func (c *Client) GetRepo(ctx context.Context, orgSlug, repoSlug string, opts *RequestOptions) (Result[Repo], error) {
	return getJSON[Repo](ctx, c, repoPath(orgSlug, repoSlug), opts)
}

// CreateRepo registers a repository with the organization.
func (c *Client) CreateRepo(ctx context.Context, orgSlug string, params RepoParams, opts *RequestOptions) (Result[Repo], error) {
	return postJSON[Repo](ctx, c, repoPath(orgSlug, ""), params, opts)
}

// UpdateRepo updates repository settings.
func (c *Client) UpdateRepo(ctx context.Context, orgSlug, repoSlug string, params RepoParams, opts *RequestOptions) (Result[Repo], error) {
	return putJSON[Repo](ctx, c, repoPath(orgSlug, repoSlug), params, opts)
}

// DeleteRepo removes a repository registration.
func (c *Client) DeleteRepo(ctx context.Context, orgSlug, repoSlug string, opts *RequestOptions) (Result[map[string]any], error) {
	return deleteJSON[map[string]any](ctx, c, repoPath(orgSlug, repoSlug), opts)
}

// withQuery layers params onto opts without mutating the caller's options.
func withQuery(opts *RequestOptions, params []Param) *RequestOptions {
	if len(params) == 0 {
		return opts
	}
	merged := RequestOptions{}
	if opts != nil {
		merged = *opts
	}
	merged.Query = append(append([]Param(nil), merged.Query...), params...)
	return &merged
}
