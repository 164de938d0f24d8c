// Package report renders Socket API payloads for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/socketsecurity/socket-sdk-go/pkg/socket"
)

// IsTerminal reports whether stdout is a terminal; plain uncolored output is
// used when it is not (pipes, CI logs).
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintQuota prints the remaining API units.
func PrintQuota(w io.Writer, q socket.QuotaResponse) {
	fmt.Fprintf(w, "Remaining API quota: %d units\n", q.Quota)
}

// PrintOrganizations renders the organizations visible to the token.
func PrintOrganizations(w io.Writer, resp socket.OrganizationsResponse) error {
	ids := make([]string, 0, len(resp.Organizations))
	for id := range resp.Organizations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := tablewriter.NewTable(w)
	table.Header("ID", "Name", "Plan")
	for _, id := range ids {
		org := resp.Organizations[id]
		if err := table.Append([]string{org.ID, org.Name, org.Plan}); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintRepos renders one page of repositories.
func PrintRepos(w io.Writer, resp socket.RepoListResponse) error {
	if len(resp.Results) == 0 {
		fmt.Fprintln(w, "No repositories found")
		return nil
	}
	table := tablewriter.NewTable(w)
	table.Header("Slug", "Branch", "Visibility", "Archived")
	for _, r := range resp.Results {
		archived := ""
		if r.Archived {
			archived = "yes"
		}
		if err := table.Append([]string{r.Slug, r.DefaultBranch, r.Visibility, archived}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if resp.NextPage > 0 {
		fmt.Fprintf(w, "More results on page %d\n", resp.NextPage)
	}
	return nil
}

// PrintIssues renders package issues, colorized by severity when color is on.
func PrintIssues(w io.Writer, issues []socket.PackageIssue, color bool) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
		return
	}
	for _, issue := range issues {
		sev := issue.Severity
		if color {
			sev = colorSeverity(sev)
		}
		fmt.Fprintf(w, "%-8s %s\n", sev, issue.Type)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Issues: %d\n", len(issues))
}

func colorSeverity(s string) string {
	switch s {
	case "critical", "high":
		return "\x1b[31m" + s + "\x1b[0m" // red
	case "middle", "medium":
		return "\x1b[33m" + s + "\x1b[0m" // yellow
	default:
		return "\x1b[36m" + s + "\x1b[0m" // cyan
	}
}
