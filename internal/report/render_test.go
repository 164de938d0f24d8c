package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socketsecurity/socket-sdk-go/pkg/socket"
)

func TestPrintQuota(t *testing.T) {
	var buf bytes.Buffer
	PrintQuota(&buf, socket.QuotaResponse{Quota: 12345})
	assert.Contains(t, buf.String(), "12345")
}

func TestPrintRepos_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRepos(&buf, socket.RepoListResponse{}))
	assert.Contains(t, buf.String(), "No repositories found")
}

func TestPrintRepos_Table(t *testing.T) {
	var buf bytes.Buffer
	resp := socket.RepoListResponse{
		Results: []socket.Repo{
			{Slug: "webapp", DefaultBranch: "main", Visibility: "private", Archived: true},
		},
		NextPage: 2,
	}
	require.NoError(t, PrintRepos(&buf, resp))
	out := buf.String()
	assert.Contains(t, out, "webapp")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "More results on page 2")
}

func TestPrintOrganizations_SortedByID(t *testing.T) {
	var buf bytes.Buffer
	resp := socket.OrganizationsResponse{Organizations: map[string]socket.Organization{
		"b": {ID: "b", Name: "Beta"},
		"a": {ID: "a", Name: "Alpha"},
	}}
	require.NoError(t, PrintOrganizations(&buf, resp))
	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alpha")), bytes.Index(buf.Bytes(), []byte("Beta")))
	assert.Contains(t, out, "Alpha")
}

func TestPrintIssues_NoColor(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, []socket.PackageIssue{{Type: "installScript", Severity: "high"}}, false)
	out := buf.String()
	assert.Contains(t, out, "installScript")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintIssues_Color(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, []socket.PackageIssue{{Type: "didYouMean", Severity: "high"}}, true)
	assert.Contains(t, buf.String(), "\x1b[31m")
}

func TestPrintIssues_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, nil, false)
	assert.Contains(t, buf.String(), "No issues found")
}
